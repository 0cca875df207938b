package schedulerapi

import "errors"

var (
	// ErrUnauthorized возвращается при неверном коде доступа
	ErrUnauthorized = errors.New("schedulerapi client: invalid access code")

	// ErrConflict возвращается, когда слот уже занят другим бронированием
	ErrConflict = errors.New("schedulerapi client: slot already booked")

	// ErrDuplicateRoom возвращается при попытке создать аудиторию с существующим именем
	ErrDuplicateRoom = errors.New("schedulerapi client: room already exists")

	// ErrBadRequest возвращается при отклоненном сервером запросе
	ErrBadRequest = errors.New("schedulerapi client: bad request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("schedulerapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedulerapi client: invalid response")
)
