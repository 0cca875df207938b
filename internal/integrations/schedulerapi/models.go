package schedulerapi

// CreateRoomRequest запрос на создание аудитории
type CreateRoomRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
	AccessCode string `json:"accessCode"`
}

// Room аудитория из ответа сервиса
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

// CreateBookingRequest запрос на бронирование
type CreateBookingRequest struct {
	Teacher    string `json:"teacher"`
	Room       string `json:"room"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	AccessCode string `json:"accessCode"`
}

// Booking бронирование из ответа сервиса
type Booking struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"roomId"`
	Room      string `json:"room"`
	Teacher   string `json:"teacher"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// ErrorResponse модель ошибки сервиса
type ErrorResponse struct {
	Error string `json:"error"`
}
