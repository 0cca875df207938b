package check_availability

import (
	"context"

	"github.com/itdept/ClassroomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByDay(ctx context.Context, day domain.Weekday) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
