package cancel_bookings

import (
	"context"

	cancelBookings "github.com/itdept/ClassroomBookingService/internal/usecase/cancel_bookings"
)

type CancelBookingsUseCase interface {
	Execute(ctx context.Context, req *cancelBookings.Request) (*cancelBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
