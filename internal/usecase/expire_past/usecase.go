package expire_past

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/pkg/types"
)

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("expire_past: internal error")

// UseCase use case удаления истекших бронирований.
// Вызывается перед каждым пользовательским чтением: бронирования
// текущего дня недели, закончившиеся до текущего времени, не должны
// показываться как занятые. Бронирования других дней не затрагиваются —
// расписание недельное, слот в понедельник переживает прошедший
// понедельник.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute удаляет бронирования текущего дня недели, закончившиеся
// строго раньше времени now. Повторный вызов с тем же моментом
// ничего не меняет — операция идемпотентна.
func (uc *UseCase) Execute(ctx context.Context, now time.Time) (int64, error) {
	day := domain.WeekdayFromTime(now)
	before := types.NewTimeString(now)

	removed, err := uc.bookingRepo.DeleteExpired(ctx, day, before)
	if err != nil {
		uc.logger.Error("ExpirePast: failed to delete expired bookings for day=%s before=%s: %v",
			day, before, err)
		return 0, fmt.Errorf("%w: delete expired: %v", ErrInternal, err)
	}

	if removed > 0 {
		uc.logger.Info("ExpirePast: removed %d expired bookings for day=%s before=%s", removed, day, before)
	}
	return removed, nil
}
