package cancel_bookings

// Request модель запроса на отмену бронирований
type Request struct {
	TeacherName string  // владелец, от имени которого выполняется отмена
	BookingIDs  []int64 // выбранные бронирования
	AccessCode  string
}

// Response модель ответа: какие бронирования были удалены.
// Чужие и несуществующие id молча пропускаются.
type Response struct {
	CancelledIDs []int64
}
