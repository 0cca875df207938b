package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) TimeRange {
	t.Helper()
	rng, err := NewTimeRange(start, end)
	require.NoError(t, err)
	return rng
}

func TestNewTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid one hour slot", start: "09:00", end: "10:00"},
		{name: "valid full day", start: "00:00", end: "23:59"},
		{name: "start equals end", start: "10:00", end: "10:00", wantErr: true},
		{name: "start after end", start: "14:00", end: "09:00", wantErr: true},
		{name: "malformed start", start: "9:00", end: "10:00", wantErr: true},
		{name: "malformed end", start: "09:00", end: "25:00", wantErr: true},
		{name: "empty bounds", start: "", end: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := NewTimeRange(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, rng.Start.String())
			assert.Equal(t, tt.end, rng.End.String())
		})
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	base := mustRange(t, "10:00", "12:00")

	tests := []struct {
		name  string
		other TimeRange
		want  bool
	}{
		{name: "identical range", other: mustRange(t, "10:00", "12:00"), want: true},
		{name: "contained inside", other: mustRange(t, "10:30", "11:30"), want: true},
		{name: "contains base", other: mustRange(t, "09:00", "13:00"), want: true},
		{name: "overlaps start", other: mustRange(t, "09:00", "10:30"), want: true},
		{name: "overlaps end", other: mustRange(t, "11:30", "13:00"), want: true},
		{name: "one minute overlap", other: mustRange(t, "11:59", "13:00"), want: true},
		{name: "touching before", other: mustRange(t, "08:00", "10:00"), want: false},
		{name: "touching after", other: mustRange(t, "12:00", "14:00"), want: false},
		{name: "fully before", other: mustRange(t, "08:00", "09:00"), want: false},
		{name: "fully after", other: mustRange(t, "13:00", "14:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}
