package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	roomRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/room"
	"github.com/itdept/ClassroomBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByTeacher(_ context.Context, teacherName string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.TeacherName == teacherName {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByRoomAndDay(_ context.Context, roomID int64, day domain.Weekday) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Day == day {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	for _, room := range f.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (f *fakeRoomRepo) GetByName(_ context.Context, name string) (*domain.Room, error) {
	for _, room := range f.rooms {
		if room.Name == name {
			return room, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
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

func newService() *Service {
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Name: "1101", Type: domain.RoomTypeLecture},
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, 1, "Prof. Sharma", domain.Monday, "14:00", "15:00"),
		booking(2, 1, "Dr. Mehta", domain.Monday, "09:00", "10:00"),
		booking(3, 1, "Prof. Sharma", domain.Wednesday, "10:00", "11:00"),
	}}
	return NewService(bookings, rooms, nopLogger{})
}

func TestService_GetByTeacher(t *testing.T) {
	svc := newService()

	resp, err := svc.GetByTeacher(context.Background(), "Prof. Sharma")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, int64(3), resp.Bookings[1].ID)

	// точное совпадение имени, с учетом регистра
	resp, err = svc.GetByTeacher(context.Background(), "prof. sharma")
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)

	_, err = svc.GetByTeacher(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetRoomTimetable(t *testing.T) {
	svc := newService()

	resp, err := svc.GetRoomTimetable(context.Background(), "1101")
	require.NoError(t, err)

	assert.Equal(t, "1101", resp.RoomName)
	assert.Equal(t, "Lecture", resp.RoomType)

	// дни без бронирований в расписание не попадают
	require.Len(t, resp.Schedule, 2)
	require.Contains(t, resp.Schedule, "Monday")
	require.Contains(t, resp.Schedule, "Wednesday")

	// записи дня отсортированы по времени начала
	monday := resp.Schedule["Monday"]
	require.Len(t, monday, 2)
	assert.Equal(t, "09:00", monday[0].StartTime)
	assert.Equal(t, "Dr. Mehta", monday[0].TeacherName)
	assert.Equal(t, "14:00", monday[1].StartTime)
	assert.Equal(t, "Prof. Sharma", monday[1].TeacherName)
}

func TestService_GetRoomTimetable_RoomNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetRoomTimetable(context.Background(), "9999")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
