package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	TeacherName string // владелец бронирования
	RoomName    string // уникальное имя аудитории
	Day         string // день недели, например "Monday"
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	AccessCode  string // общий токен доступа
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	RoomID      int64
	RoomName    string
	TeacherName string
	Day         string
	StartTime   string
	EndTime     string
	CreatedAt   time.Time
}
