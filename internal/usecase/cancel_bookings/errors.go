package cancel_bookings

import "errors"

var (
	// ErrUnauthorized возвращается при неверном токене доступа
	ErrUnauthorized = errors.New("cancel_bookings: invalid access token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_bookings: internal error")
)
