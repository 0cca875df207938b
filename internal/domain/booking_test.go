package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_OwnedBy(t *testing.T) {
	b := &Booking{TeacherName: "Prof. Sharma"}

	assert.True(t, b.OwnedBy("Prof. Sharma"))
	assert.False(t, b.OwnedBy("prof. sharma"))
	assert.False(t, b.OwnedBy("Prof. Sharma "))
	assert.False(t, b.OwnedBy("Dr. Mehta"))
}

func TestBooking_ExpiredAt(t *testing.T) {
	// 2025-09-01 is a Monday
	monday := func(hh, mm int) time.Time {
		return time.Date(2025, time.September, 1, hh, mm, 0, 0, time.UTC)
	}

	b := &Booking{Day: Monday, StartTime: "09:00", EndTime: "10:00"}

	assert.False(t, b.ExpiredAt(monday(8, 0)), "not started yet")
	assert.False(t, b.ExpiredAt(monday(9, 30)), "in progress")
	assert.False(t, b.ExpiredAt(monday(10, 0)), "ends exactly now")
	assert.True(t, b.ExpiredAt(monday(10, 1)), "finished")

	// a Monday slot never expires on other weekdays
	tuesday := monday(23, 0).AddDate(0, 0, 1)
	assert.False(t, b.ExpiredAt(tuesday))
}

func TestWeekday_Validate(t *testing.T) {
	for _, day := range AllWeekdays {
		assert.NoError(t, day.Validate())
	}
	assert.ErrorIs(t, Weekday("monday").Validate(), ErrInvalidWeekday)
	assert.ErrorIs(t, Weekday("Mon").Validate(), ErrInvalidWeekday)
	assert.ErrorIs(t, Weekday("").Validate(), ErrInvalidWeekday)
}

func TestWeekdayFromTime(t *testing.T) {
	assert.Equal(t, Monday, WeekdayFromTime(time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, WeekdayFromTime(time.Date(2025, time.September, 7, 12, 0, 0, 0, time.UTC)))
}

func TestRoomType_Validate(t *testing.T) {
	assert.NoError(t, RoomTypeLecture.Validate())
	assert.NoError(t, RoomTypeLab.Validate())
	assert.ErrorIs(t, RoomType("Auditorium").Validate(), ErrInvalidRoomType)
}
