package create_booking

import (
	"context"

	"github.com/itdept/ClassroomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Room, error)
}

// ConflictFinder интерфейс движка поиска конфликтов расписания
type ConflictFinder interface {
	FindConflict(ctx context.Context, roomID int64, day domain.Weekday, rng domain.TimeRange, excludeBookingID *int64) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий бронирования
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, payload any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
