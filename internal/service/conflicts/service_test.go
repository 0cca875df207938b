package conflicts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/pkg/ptr"
	"github.com/itdept/ClassroomBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByRoomAndDay(_ context.Context, roomID int64, day domain.Weekday) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Day == day {
			out = append(out, b)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(id, roomID int64, teacher string, day domain.Weekday, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		RoomID:      roomID,
		TeacherName: teacher,
		Day:         day,
		StartTime:   types.TimeString(start),
		EndTime:     types.TimeString(end),
	}
}

func mustRange(t *testing.T, start, end string) domain.TimeRange {
	t.Helper()
	rng, err := domain.NewTimeRange(start, end)
	require.NoError(t, err)
	return rng
}

func TestService_FindConflict(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, 1, "Prof. Sharma", domain.Monday, "09:00", "10:00"),
		booking(2, 1, "Dr. Mehta", domain.Monday, "10:00", "11:00"),
		booking(3, 1, "Prof. Nair", domain.Monday, "11:00", "12:00"),
		booking(4, 2, "Dr. Kapoor", domain.Monday, "09:00", "12:00"),
	}}
	svc := NewService(repo, nopLogger{})

	t.Run("no overlap", func(t *testing.T) {
		got, err := svc.FindConflict(ctx, 1, domain.Monday, mustRange(t, "14:00", "15:00"), nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("touching endpoints are free", func(t *testing.T) {
		got, err := svc.FindConflict(ctx, 1, domain.Monday, mustRange(t, "12:00", "13:00"), nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns first overlap in insertion order", func(t *testing.T) {
		got, err := svc.FindConflict(ctx, 1, domain.Monday, mustRange(t, "09:30", "11:30"), nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Prof. Sharma", got.TeacherName)
	})

	t.Run("other day is free", func(t *testing.T) {
		got, err := svc.FindConflict(ctx, 1, domain.Tuesday, mustRange(t, "09:00", "10:00"), nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("other room is free", func(t *testing.T) {
		got, err := svc.FindConflict(ctx, 3, domain.Monday, mustRange(t, "09:00", "10:00"), nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("excluded booking does not conflict with itself", func(t *testing.T) {
		got, err := svc.FindConflict(ctx, 1, domain.Monday, mustRange(t, "09:00", "10:00"), ptr.Ptr(int64(1)))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("exclusion keeps other overlaps", func(t *testing.T) {
		got, err := svc.FindConflict(ctx, 1, domain.Monday, mustRange(t, "09:30", "10:30"), ptr.Ptr(int64(1)))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Dr. Mehta", got.TeacherName)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		broken := NewService(&fakeBookingRepo{err: errors.New("boom")}, nopLogger{})
		_, err := broken.FindConflict(ctx, 1, domain.Monday, mustRange(t, "09:00", "10:00"), nil)
		assert.Error(t, err)
	})
}

func TestHasConflict(t *testing.T) {
	bookings := []*domain.Booking{
		booking(1, 1, "Prof. Sharma", domain.Monday, "09:00", "10:00"),
		booking(2, 1, "Dr. Mehta", domain.Monday, "14:00", "16:00"),
	}

	assert.True(t, HasConflict(bookings, mustRange(t, "09:30", "10:30")))
	assert.True(t, HasConflict(bookings, mustRange(t, "15:00", "17:00")))
	assert.False(t, HasConflict(bookings, mustRange(t, "10:00", "11:00")))
	assert.False(t, HasConflict(bookings, mustRange(t, "12:00", "14:00")))
	assert.False(t, HasConflict(nil, mustRange(t, "09:00", "10:00")))
}
