package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается при неверном токене доступа
	ErrUnauthorized = errors.New("create_booking: invalid access token")

	// ErrInvalidRange возвращается при некорректном временном диапазоне
	ErrInvalidRange = errors.New("create_booking: invalid time range")

	// ErrRoomNotFound возвращается, когда аудитория не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrConflict возвращается при пересечении с существующим бронированием
	ErrConflict = errors.New("create_booking: time slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError несет имя владельца пересекающегося бронирования,
// чтобы вызывающая сторона могла показать, кем занят слот.
// errors.Is(err, ErrConflict) возвращает true.
type ConflictError struct {
	TeacherName string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_booking: room already booked by %s", e.TeacherName)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
