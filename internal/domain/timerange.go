package domain

import "github.com/itdept/ClassroomBookingService/pkg/types"

// TimeRange represents a half-open interval [Start, End) within one weekday,
// with minute granularity.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeRange parses and validates a range from "HH:MM" strings
func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return TimeRange{}, ErrInvalidRange
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return TimeRange{}, ErrInvalidRange
	}
	r := TimeRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// Validate checks that both bounds are well-formed and Start < End
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return ErrInvalidRange
	}
	if err := r.End.Validate(); err != nil {
		return ErrInvalidRange
	}
	if !r.Start.IsBefore(r.End) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps reports whether two ranges intersect.
// Touching endpoints (r.End == other.Start) are not an overlap.
// This is the sole overlap predicate used for conflict detection.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}
