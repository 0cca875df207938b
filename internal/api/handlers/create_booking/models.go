package create_booking

import (
	"time"

	createBooking "github.com/itdept/ClassroomBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Teacher    string `json:"teacher"`
	Room       string `json:"room"`
	Day        string `json:"day"`       // "Monday"
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "10:00"
	AccessCode string `json:"accessCode"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	Room      string `json:"room"`
	Teacher   string `json:"teacher"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		TeacherName: r.Teacher,
		RoomName:    r.Room,
		Day:         r.Day,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		AccessCode:  r.AccessCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		RoomID:    resp.RoomID,
		Room:      resp.RoomName,
		Teacher:   resp.TeacherName,
		Day:       resp.Day,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
