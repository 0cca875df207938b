package reschedule_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается при неверном токене доступа
	ErrUnauthorized = errors.New("reschedule_booking: invalid access token")

	// ErrInvalidRange возвращается при некорректном временном диапазоне
	ErrInvalidRange = errors.New("reschedule_booking: invalid time range")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrConflict возвращается при пересечении с чужим бронированием
	ErrConflict = errors.New("reschedule_booking: time slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)

// ConflictError несет имя владельца пересекающегося бронирования.
// errors.Is(err, ErrConflict) возвращает true.
type ConflictError struct {
	TeacherName string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("reschedule_booking: room already booked by %s", e.TeacherName)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
