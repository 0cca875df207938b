package check_availability

// Request модель запроса проверки доступности аудиторий
type Request struct {
	Day       string // день недели
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
}

// AvailableRoom аудитория, свободная в запрошенный интервал
type AvailableRoom struct {
	ID       int64
	Name     string
	Type     string
	Capacity int
}

// Response модель ответа со списком свободных аудиторий
// в порядке создания
type Response struct {
	Day       string
	StartTime string
	EndTime   string
	Rooms     []*AvailableRoom
}
