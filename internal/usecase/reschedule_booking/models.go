package reschedule_booking

import "time"

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID  int64
	NewDay     string // день недели, например "Tuesday"
	NewStart   string // "HH:MM"
	NewEnd     string // "HH:MM"
	AccessCode string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64
	RoomID      int64
	TeacherName string
	Day         string
	StartTime   string
	EndTime     string
	CreatedAt   time.Time
}
