package conflicts

import (
	"context"
	"fmt"

	"github.com/itdept/ClassroomBookingService/internal/domain"
)

// Service движок поиска конфликтов расписания.
// Используется операциями создания, переноса и проверки доступности.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр движка конфликтов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// FindConflict возвращает первое бронирование аудитории на указанный день,
// пересекающееся с rng, или nil, если пересечений нет.
// Порядок просмотра — порядок вставки (id ASC), поэтому при нескольких
// пересечениях всегда возвращается одно и то же бронирование: его
// владельца сообщают пользователю в тексте ошибки.
// excludeBookingID исключает из проверки собственную запись при переносе.
func (s *Service) FindConflict(
	ctx context.Context,
	roomID int64,
	day domain.Weekday,
	rng domain.TimeRange,
	excludeBookingID *int64,
) (*domain.Booking, error) {
	bookings, err := s.bookingRepo.GetByRoomAndDay(ctx, roomID, day)
	if err != nil {
		return nil, fmt.Errorf("conflicts: get bookings for room=%d day=%s: %w", roomID, day, err)
	}

	for _, b := range bookings {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if b.Range().Overlaps(rng) {
			return b, nil
		}
	}

	return nil, nil
}

// HasConflict возвращает true, если rng пересекается хотя бы с одним
// бронированием из bookings. Используется проверкой доступности,
// которая уже загрузила бронирования дня одним запросом.
func HasConflict(bookings []*domain.Booking, rng domain.TimeRange) bool {
	for _, b := range bookings {
		if b.Range().Overlaps(rng) {
			return true
		}
	}
	return false
}
