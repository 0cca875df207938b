package domain

import (
	"time"

	"github.com/itdept/ClassroomBookingService/pkg/types"
)

// Booking represents a weekly reservation of one room for one weekday
// and one contiguous time range, owned by a named teacher.
type Booking struct {
	ID          int64
	RoomID      int64
	TeacherName string
	Day         Weekday
	StartTime   types.TimeString
	EndTime     types.TimeString
	CreatedAt   time.Time // audit only, not used in scheduling logic
}

// Range returns the booking's time range
func (b *Booking) Range() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// OwnedBy reports whether the booking belongs to the given teacher.
// Matching is exact and case-sensitive.
func (b *Booking) OwnedBy(teacherName string) bool {
	return b.TeacherName == teacherName
}

// ExpiredAt reports whether the booking's slot has already finished
// on the given instant's weekday
func (b *Booking) ExpiredAt(now time.Time) bool {
	if b.Day != WeekdayFromTime(now) {
		return false
	}
	return b.EndTime.IsBefore(types.NewTimeString(now))
}
