package reschedule_booking

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
	updated  []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeBookingRepo) UpdateSchedule(_ context.Context, id int64, day domain.Weekday, rng domain.TimeRange) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Day = day
	b.StartTime = rng.Start
	b.EndTime = rng.End
	f.updated = append(f.updated, id)
	return nil
}

type fakeConflictFinder struct {
	conflict    *domain.Booking
	excludedIDs []int64
}

func (f *fakeConflictFinder) FindConflict(_ context.Context, _ int64, _ domain.Weekday, _ domain.TimeRange, excludeBookingID *int64) (*domain.Booking, error) {
	if excludeBookingID != nil {
		f.excludedIDs = append(f.excludedIDs, *excludeBookingID)
		if f.conflict != nil && f.conflict.ID == *excludeBookingID {
			return nil, nil
		}
	}
	return f.conflict, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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

func newFixture() (*fakeBookingRepo, *fakeConflictFinder, *fakePublisher, *UseCase) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, RoomID: 5, TeacherName: "Prof. Sharma", Day: domain.Monday, StartTime: "09:00", EndTime: "10:00"},
	}}
	finder := &fakeConflictFinder{}
	publisher := &fakePublisher{}
	uc := NewUseCase(repo, finder, fakeTxManager{}, publisher, testToken, nopLogger{})
	return repo, finder, publisher, uc
}

func validRequest() *Request {
	return &Request{
		BookingID:  1,
		NewDay:     "Wednesday",
		NewStart:   "14:00",
		NewEnd:     "15:00",
		AccessCode: testToken,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo, finder, publisher, uc := newFixture()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(5), resp.RoomID)
	assert.Equal(t, "Wednesday", resp.Day)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "15:00", resp.EndTime)

	assert.Equal(t, []int64{1}, repo.updated)
	assert.Equal(t, domain.Wednesday, repo.bookings[1].Day)

	// проверка конфликта исключает собственный id
	assert.Equal(t, []int64{1}, finder.excludedIDs)
	assert.Equal(t, []string{events.KeyBookingRescheduled}, publisher.keys)
}

func TestUseCase_Execute_SelfOverlapIsNotConflict(t *testing.T) {
	repo, finder, _, uc := newFixture()

	// единственное пересечение — сама переносимая запись
	finder.conflict = repo.bookings[1]

	req := validRequest()
	req.NewDay = "Monday"
	req.NewStart = "09:30"
	req.NewEnd = "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	repo, finder, publisher, uc := newFixture()
	finder.conflict = &domain.Booking{ID: 9, RoomID: 5, TeacherName: "Dr. Mehta"}

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Dr. Mehta", conflictErr.TeacherName)

	assert.Empty(t, repo.updated)
	assert.Empty(t, publisher.keys)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	_, _, _, uc := newFixture()
	req := validRequest()
	req.BookingID = 42

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_InvalidToken(t *testing.T) {
	repo, _, _, uc := newFixture()
	req := validRequest()
	req.AccessCode = "wrong"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, repo.updated)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "zero id", mutate: func(r *Request) { r.BookingID = 0 }, wantErr: ErrInvalidInput},
		{name: "negative id", mutate: func(r *Request) { r.BookingID = -1 }, wantErr: ErrInvalidInput},
		{name: "unknown weekday", mutate: func(r *Request) { r.NewDay = "Someday" }, wantErr: ErrInvalidInput},
		{name: "malformed time", mutate: func(r *Request) { r.NewStart = "2pm" }, wantErr: ErrInvalidRange},
		{name: "inverted range", mutate: func(r *Request) { r.NewStart = "16:00" }, wantErr: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, uc := newFixture()
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
