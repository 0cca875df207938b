package check_availability

import (
	"context"
	"fmt"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/internal/service/conflicts"
)

// UseCase use case проверки доступности аудиторий.
// Операция только читает, токен не требуется.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute возвращает аудитории, в которых ни одно бронирование
// на указанный день не пересекается с запрошенным интервалом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: day=%s, time=%s-%s", req.Day, req.StartTime, req.EndTime)

	if err := domain.Weekday(req.Day).Validate(); err != nil {
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Day)
	}

	rng, err := domain.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid range %s-%s", req.StartTime, req.EndTime)
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidRange, req.StartTime, req.EndTime)
	}

	day := domain.Weekday(req.Day)

	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// Бронирования всего дня одним запросом, затем группировка по аудитории
	dayBookings, err := uc.bookingRepo.GetByDay(ctx, day)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for day=%s: %v", day, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	byRoom := make(map[int64][]*domain.Booking, len(rooms))
	for _, b := range dayBookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	available := make([]*AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		if conflicts.HasConflict(byRoom[room.ID], rng) {
			continue
		}
		available = append(available, &AvailableRoom{
			ID:       room.ID,
			Name:     room.Name,
			Type:     string(room.Type),
			Capacity: room.Capacity,
		})
	}

	uc.logger.Info("CheckAvailability: %d of %d rooms available on %s %s-%s",
		len(available), len(rooms), req.Day, req.StartTime, req.EndTime)

	return &Response{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Rooms:     available,
	}, nil
}
