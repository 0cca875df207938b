package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itdept/ClassroomBookingService/internal/api/handlers"
	createBooking "github.com/itdept/ClassroomBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"teacher":"Prof. Sharma","room":"1101","day":"Monday","startTime":"09:00","endTime":"10:00","accessCode":"ITDept@2025"}`

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:          7,
		RoomID:      1,
		RoomName:    "1101",
		TeacherName: "Prof. Sharma",
		Day:         "Monday",
		StartTime:   "09:00",
		EndTime:     "10:00",
		CreatedAt:   time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "1101", got.Room)
	assert.Equal(t, "Monday", got.Day)
	assert.Equal(t, "2025-09-01T08:00:00Z", got.CreatedAt)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Prof. Sharma", uc.got.TeacherName)
	assert.Equal(t, "ITDept@2025", uc.got.AccessCode)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "unauthorized",
			err:        createBooking.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid access code, booking denied",
		},
		{
			name:       "conflict names the holder",
			err:        &createBooking.ConflictError{TeacherName: "Dr. Mehta"},
			wantStatus: http.StatusConflict,
			wantError:  "room already booked by Dr. Mehta",
		},
		{
			name:       "invalid range",
			err:        createBooking.ErrInvalidRange,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid time range, expected HH:MM with start before end",
		},
		{
			name:       "room not found",
			err:        createBooking.ErrRoomNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "room not found",
		},
		{
			name:       "invalid input",
			err:        createBooking.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid booking data",
		},
		{
			name:       "internal error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantError, got.Error)
		})
	}
}

func TestHandler_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json"},
		{name: "unknown field", body: `{"teacher":"X","extra":true}`},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got, "use case must not be called")
		})
	}
}
