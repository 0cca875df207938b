package check_availability

import (
	"context"
	"time"

	checkAvailability "github.com/itdept/ClassroomBookingService/internal/usecase/check_availability"
)

type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// ExpirePastUseCase удаляет истекшие бронирования перед чтением
type ExpirePastUseCase interface {
	Execute(ctx context.Context, now time.Time) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
