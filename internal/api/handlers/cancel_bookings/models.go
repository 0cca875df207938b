package cancel_bookings

import (
	cancelBookings "github.com/itdept/ClassroomBookingService/internal/usecase/cancel_bookings"
)

// CancelBookingsRequest HTTP request model
type CancelBookingsRequest struct {
	Teacher    string  `json:"teacher"`
	BookingIDs []int64 `json:"bookingIds"`
	AccessCode string  `json:"accessCode"`
}

// CancelBookingsResponse HTTP response model
type CancelBookingsResponse struct {
	CancelledIDs []int64 `json:"cancelledIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingsRequest) ToUseCaseRequest() *cancelBookings.Request {
	return &cancelBookings.Request{
		TeacherName: r.Teacher,
		BookingIDs:  r.BookingIDs,
		AccessCode:  r.AccessCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBookings.Response) *CancelBookingsResponse {
	return &CancelBookingsResponse{CancelledIDs: resp.CancelledIDs}
}
