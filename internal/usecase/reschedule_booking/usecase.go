package reschedule_booking

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/internal/infra/events"
	bookingRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/booking"
)

// UseCase use case переноса бронирования на другой день/время
type UseCase struct {
	bookingRepo BookingRepository
	conflicts   ConflictFinder
	txManager   TransactionManager
	publisher   EventPublisher // может быть nil, если события выключены
	accessToken string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	conflicts ConflictFinder,
	txManager TransactionManager,
	publisher EventPublisher,
	accessToken string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		conflicts:   conflicts,
		txManager:   txManager,
		publisher:   publisher,
		accessToken: accessToken,
		logger:      logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Проверка конфликта исключает собственный id бронирования: перенос
// на пересекающийся со старым слотом интервал в той же аудитории
// не является конфликтом с самим собой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: id=%d, newDay=%s, newTime=%s-%s",
		req.BookingID, req.NewDay, req.NewStart, req.NewEnd)

	// 1. Токен проверяется раньше любой валидации входных данных
	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(uc.accessToken)) != 1 {
		uc.logger.Warn("RescheduleBooking: invalid access token for booking id=%d", req.BookingID)
		return nil, ErrUnauthorized
	}

	// 2. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if err := domain.Weekday(req.NewDay).Validate(); err != nil {
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.NewDay)
	}

	// 3. Валидация временного диапазона
	rng, err := domain.NewTimeRange(req.NewStart, req.NewEnd)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: invalid range %s-%s", req.NewStart, req.NewEnd)
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidRange, req.NewStart, req.NewEnd)
	}

	newDay := domain.Weekday(req.NewDay)
	var result *domain.Booking

	// 4. Загрузка, проверка конфликта и обновление в одной
	// сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		conflict, err := uc.conflicts.FindConflict(txCtx, booking.RoomID, newDay, rng, &booking.ID)
		if err != nil {
			uc.logger.Error("RescheduleBooking: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("RescheduleBooking: room=%d day=%s %s-%s already booked by %s",
				booking.RoomID, req.NewDay, req.NewStart, req.NewEnd, conflict.TeacherName)
			return &ConflictError{TeacherName: conflict.TeacherName}
		}

		if err := uc.bookingRepo.UpdateSchedule(txCtx, booking.ID, newDay, rng); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		booking.Day = newDay
		booking.StartTime = rng.Start
		booking.EndTime = rng.End
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d", result.ID)

	// 5. Публикация события после коммита, best-effort
	if uc.publisher != nil {
		if err := uc.publisher.PublishJSON(ctx, events.KeyBookingRescheduled, map[string]any{
			"booking_id": result.ID,
			"room_id":    result.RoomID,
			"teacher":    result.TeacherName,
			"day":        string(result.Day),
			"start":      result.StartTime.String(),
			"end":        result.EndTime.String(),
		}); err != nil {
			uc.logger.Error("RescheduleBooking: failed to publish event for booking id=%d: %v", result.ID, err)
		}
	}

	return &Response{
		ID:          result.ID,
		RoomID:      result.RoomID,
		TeacherName: result.TeacherName,
		Day:         string(result.Day),
		StartTime:   result.StartTime.String(),
		EndTime:     result.EndTime.String(),
		CreatedAt:   result.CreatedAt,
	}, nil
}
