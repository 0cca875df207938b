package reschedule_booking

import (
	"time"

	rescheduleBooking "github.com/itdept/ClassroomBookingService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Day        string `json:"day"`       // "Tuesday"
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "10:00"
	AccessCode string `json:"accessCode"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	Teacher   string `json:"teacher"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64) *rescheduleBooking.Request {
	return &rescheduleBooking.Request{
		BookingID:  bookingID,
		NewDay:     r.Day,
		NewStart:   r.StartTime,
		NewEnd:     r.EndTime,
		AccessCode: r.AccessCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		Teacher:   resp.TeacherName,
		Day:       resp.Day,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
