package bookings

import (
	"context"

	"github.com/itdept/ClassroomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByTeacher(ctx context.Context, teacherName string) ([]*domain.Booking, error)
	GetByRoomAndDay(ctx context.Context, roomID int64, day domain.Weekday) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByName(ctx context.Context, name string) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
