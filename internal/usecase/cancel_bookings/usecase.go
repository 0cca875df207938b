package cancel_bookings

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/itdept/ClassroomBookingService/internal/infra/events"
	bookingRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/booking"
)

// UseCase use case отмены выбранных бронирований
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher // может быть nil, если события выключены
	accessToken string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	accessToken string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		accessToken: accessToken,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирований.
// Удаляется бронирование только если оно существует и принадлежит
// указанному преподавателю; остальные id молча пропускаются — даже
// с корректным токеном нельзя отменить чужое бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBookings: teacher=%s, ids=%v", req.TeacherName, req.BookingIDs)

	// 1. Токен проверяется раньше любой валидации входных данных
	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(uc.accessToken)) != 1 {
		uc.logger.Warn("CancelBookings: invalid access token for teacher=%s", req.TeacherName)
		return nil, ErrUnauthorized
	}

	// 2. Валидация входных данных
	if strings.TrimSpace(req.TeacherName) == "" {
		return nil, fmt.Errorf("%w: teacher name is required", ErrInvalidInput)
	}

	cancelled := make([]int64, 0, len(req.BookingIDs))

	// 3. Удаляем выбранные бронирования в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, id := range req.BookingIDs {
			booking, err := uc.bookingRepo.GetByID(txCtx, id)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					uc.logger.Warn("CancelBookings: booking id=%d not found, skipping", id)
					continue
				}
				uc.logger.Error("CancelBookings: failed to get booking id=%d: %v", id, err)
				return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
			}

			if !booking.OwnedBy(req.TeacherName) {
				uc.logger.Warn("CancelBookings: booking id=%d belongs to %s, not %s, skipping",
					id, booking.TeacherName, req.TeacherName)
				continue
			}

			if err := uc.bookingRepo.Delete(txCtx, id); err != nil {
				uc.logger.Error("CancelBookings: failed to delete booking id=%d: %v", id, err)
				return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
			}
			cancelled = append(cancelled, id)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBookings: cancelled %d of %d bookings for teacher=%s",
		len(cancelled), len(req.BookingIDs), req.TeacherName)

	// 4. Публикация событий после коммита, best-effort
	if uc.publisher != nil {
		for _, id := range cancelled {
			if err := uc.publisher.PublishJSON(ctx, events.KeyBookingCancelled, map[string]any{
				"booking_id": id,
				"teacher":    req.TeacherName,
			}); err != nil {
				uc.logger.Error("CancelBookings: failed to publish event for booking id=%d: %v", id, err)
			}
		}
	}

	return &Response{CancelledIDs: cancelled}, nil
}
