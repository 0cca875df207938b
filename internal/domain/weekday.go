package domain

import "time"

// Weekday represents a day of the week in the timetable.
// Bookings recur weekly: a Monday booking applies to every Monday,
// there are no calendar dates in the model.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AllWeekdays lists the weekdays in calendar order
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Validate checks that the value is one of the seven weekdays
func (d Weekday) Validate() error {
	for _, day := range AllWeekdays {
		if d == day {
			return nil
		}
	}
	return ErrInvalidWeekday
}

// WeekdayFromTime returns the weekday of the given instant
func WeekdayFromTime(t time.Time) Weekday {
	return Weekday(t.Weekday().String())
}
