package cancel_bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/internal/infra/events"
	bookingRepo "github.com/itdept/ClassroomBookingService/internal/infra/storage/booking"
)

const testToken = "ITDept@2025"

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	deleted  []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	delete(f.bookings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) PublishJSON(_ context.Context, key string, _ any) error {
	f.keys = append(f.keys, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*fakeBookingRepo, *fakePublisher, *UseCase) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, RoomID: 1, TeacherName: "Prof. Sharma", Day: domain.Monday, StartTime: "09:00", EndTime: "10:00"},
		2: {ID: 2, RoomID: 1, TeacherName: "Prof. Sharma", Day: domain.Tuesday, StartTime: "10:00", EndTime: "11:00"},
		3: {ID: 3, RoomID: 2, TeacherName: "Dr. Mehta", Day: domain.Monday, StartTime: "09:00", EndTime: "10:00"},
	}}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, fakeTxManager{}, publisher, testToken, nopLogger{})
	return repo, publisher, uc
}

func TestUseCase_Execute_CancelsOwnBookings(t *testing.T) {
	repo, publisher, uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		TeacherName: "Prof. Sharma",
		BookingIDs:  []int64{1, 2},
		AccessCode:  testToken,
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2}, resp.CancelledIDs)
	assert.Equal(t, []int64{1, 2}, repo.deleted)
	assert.Equal(t, []string{events.KeyBookingCancelled, events.KeyBookingCancelled}, publisher.keys)
}

func TestUseCase_Execute_SkipsForeignBookings(t *testing.T) {
	repo, _, uc := newFixture()

	// id=3 принадлежит другому преподавателю: пропускается молча,
	// свои бронирования при этом удаляются
	resp, err := uc.Execute(context.Background(), &Request{
		TeacherName: "Prof. Sharma",
		BookingIDs:  []int64{1, 3},
		AccessCode:  testToken,
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, resp.CancelledIDs)
	assert.NotContains(t, repo.deleted, int64(3))
	assert.Contains(t, repo.bookings, int64(3))
}

func TestUseCase_Execute_OwnerMatchIsCaseSensitive(t *testing.T) {
	repo, _, uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		TeacherName: "prof. sharma",
		BookingIDs:  []int64{1},
		AccessCode:  testToken,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.CancelledIDs)
	assert.Empty(t, repo.deleted)
}

func TestUseCase_Execute_SkipsMissingBookings(t *testing.T) {
	_, _, uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		TeacherName: "Prof. Sharma",
		BookingIDs:  []int64{42, 1},
		AccessCode:  testToken,
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, resp.CancelledIDs)
}

func TestUseCase_Execute_InvalidToken(t *testing.T) {
	repo, publisher, uc := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		TeacherName: "Prof. Sharma",
		BookingIDs:  []int64{1},
		AccessCode:  "wrong",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, repo.deleted)
	assert.Empty(t, publisher.keys)
}

func TestUseCase_Execute_EmptyTeacher(t *testing.T) {
	_, _, uc := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		TeacherName: "   ",
		BookingIDs:  []int64{1},
		AccessCode:  testToken,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_EmptySelection(t *testing.T) {
	repo, _, uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		TeacherName: "Prof. Sharma",
		BookingIDs:  nil,
		AccessCode:  testToken,
	})
	require.NoError(t, err)

	assert.Empty(t, resp.CancelledIDs)
	assert.Empty(t, repo.deleted)
}
