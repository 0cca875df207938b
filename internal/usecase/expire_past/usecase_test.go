package expire_past

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itdept/ClassroomBookingService/internal/domain"
	"github.com/itdept/ClassroomBookingService/pkg/types"
)

type fakeBookingRepo struct {
	gotDay    domain.Weekday
	gotBefore types.TimeString
	removed   int64
	err       error
}

func (f *fakeBookingRepo) DeleteExpired(_ context.Context, day domain.Weekday, before types.TimeString) (int64, error) {
	f.gotDay = day
	f.gotBefore = before
	return f.removed, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeBookingRepo{removed: 3}
	uc := NewUseCase(repo, nopLogger{})

	// 2025-09-01 is a Monday
	now := time.Date(2025, time.September, 1, 10, 30, 0, 0, time.UTC)

	removed, err := uc.Execute(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(3), removed)
	assert.Equal(t, domain.Monday, repo.gotDay)
	assert.Equal(t, types.TimeString("10:30"), repo.gotBefore)
}

func TestUseCase_Execute_NothingExpired(t *testing.T) {
	repo := &fakeBookingRepo{removed: 0}
	uc := NewUseCase(repo, nopLogger{})

	removed, err := uc.Execute(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrInternal)
}
