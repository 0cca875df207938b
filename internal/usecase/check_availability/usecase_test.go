package check_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByDay(_ context.Context, day domain.Weekday) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.Day == day {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(id, roomID int64, day domain.Weekday, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		RoomID:    roomID,
		Day:       day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func roomNames(resp *Response) []string {
	names := make([]string, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		names = append(names, r.Name)
	}
	return names
}

func TestUseCase_Execute(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "1101", Type: domain.RoomTypeLecture},
		{ID: 2, Name: "1102", Type: domain.RoomTypeLecture},
		{ID: 3, Name: "Lab1", Type: domain.RoomTypeLab},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, 1, domain.Monday, "09:00", "10:00"),
		booking(2, 3, domain.Monday, "10:00", "12:00"),
		booking(3, 2, domain.Tuesday, "09:00", "18:00"),
	}}
	uc := NewUseCase(bookings, rooms, nopLogger{})
	ctx := context.Background()

	t.Run("room busy in requested window is excluded", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{Day: "Monday", StartTime: "09:30", EndTime: "10:30"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1102"}, roomNames(resp))
	})

	t.Run("touching bookings leave the room free", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{Day: "Monday", StartTime: "08:00", EndTime: "09:00"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1101", "1102", "Lab1"}, roomNames(resp))
	})

	t.Run("lab busy for two hours", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{Day: "Monday", StartTime: "11:00", EndTime: "12:00"})
		require.NoError(t, err)
		assert.NotContains(t, roomNames(resp), "Lab1")
	})

	t.Run("other day is unaffected", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{Day: "Wednesday", StartTime: "09:00", EndTime: "18:00"})
		require.NoError(t, err)
		assert.Len(t, resp.Rooms, 3)
	})

	t.Run("rooms keep creation order", func(t *testing.T) {
		resp, err := uc.Execute(ctx, &Request{Day: "Friday", StartTime: "09:00", EndTime: "10:00"})
		require.NoError(t, err)
		assert.Equal(t, []string{"1101", "1102", "Lab1"}, roomNames(resp))
	})

	t.Run("invalid weekday", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{Day: "Caturday", StartTime: "09:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{Day: "Monday", StartTime: "10:00", EndTime: "09:00"})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestUseCase_Execute_EchoesQuery(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Day: "Monday", StartTime: "09:00", EndTime: "10:00"})
	require.NoError(t, err)

	assert.Equal(t, "Monday", resp.Day)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
	assert.Empty(t, resp.Rooms)
}
