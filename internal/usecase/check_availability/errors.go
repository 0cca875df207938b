package check_availability

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном временном диапазоне
	ErrInvalidRange = errors.New("check_availability: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
