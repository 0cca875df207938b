package models

import (
	"time"

	"github.com/itdept/ClassroomBookingService/internal/domain"
)

// BookingResponse модель бронирования для ответа сервиса
type BookingResponse struct {
	ID          int64
	RoomID      int64
	TeacherName string
	Day         string
	StartTime   string
	EndTime     string
	CreatedAt   time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// TimetableEntry одна запись недельного расписания аудитории
type TimetableEntry struct {
	StartTime   string
	EndTime     string
	TeacherName string
}

// RoomTimetableResponse недельное расписание аудитории:
// записи сгруппированы по дням и отсортированы по времени начала
type RoomTimetableResponse struct {
	RoomName string
	RoomType string
	Schedule map[string][]*TimetableEntry
}

// FromDomainBooking конвертирует domain.Booking в модель ответа
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		TeacherName: b.TeacherName,
		Day:         string(b.Day),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в модель ответа
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}
