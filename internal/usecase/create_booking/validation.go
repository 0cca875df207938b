package create_booking

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/itdept/ClassroomBookingService/internal/domain"
)

// validateAccessCode сравнивает токен за константное время
func validateAccessCode(supplied, expected string) error {
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(expected)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// validateRequest валидирует входные данные запроса.
// Диапазон времени проверяется отдельно, после токена.
func validateRequest(req *Request) error {
	teacher := strings.TrimSpace(req.TeacherName)
	if teacher == "" {
		return fmt.Errorf("%w: teacher name is required", ErrInvalidInput)
	}
	if len(teacher) > domain.MaxTeacherNameLength {
		return fmt.Errorf("%w: teacher name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RoomName) == "" {
		return fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}

	if err := domain.Weekday(req.Day).Validate(); err != nil {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Day)
	}

	return nil
}

// parseRange разбирает и валидирует временной диапазон запроса
func parseRange(req *Request) (domain.TimeRange, error) {
	rng, err := domain.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, req.StartTime, req.EndTime)
	}
	return rng, nil
}
