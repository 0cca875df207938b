package get_teacher_bookings

import (
	"context"
	"time"

	"github.com/itdept/ClassroomBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByTeacher(ctx context.Context, teacherName string) (*models.BookingListResponse, error)
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
