package get_room_timetable

import (
	"context"
	"time"

	"github.com/itdept/ClassroomBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetRoomTimetable(ctx context.Context, roomName string) (*models.RoomTimetableResponse, error)
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
