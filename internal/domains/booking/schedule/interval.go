package schedule

import "fmt"

// Interval is a half-open time range [Start, End) within a single day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval parses and validates a start/end time pair.
func NewInterval(startTime, endTime string) (Interval, error) {
	start, err := NormalizeTime(startTime)
	if err != nil {
		return Interval{}, fmt.Errorf("start time: %w", err)
	}

	end, err := NormalizeTime(endTime)
	if err != nil {
		return Interval{}, fmt.Errorf("end time: %w", err)
	}

	if start >= end {
		return Interval{}, fmt.Errorf("%w: %s >= %s", ErrInvalidInterval, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

// WithBuffer widens the interval symmetrically by the given number of
// minutes, clamped to the day boundaries. Buffer windows never cross
// midnight. A zero or negative buffer returns the interval unchanged.
func (i Interval) WithBuffer(minutes int) Interval {
	if minutes <= 0 {
		return i
	}

	return Interval{
		Start: i.Start.AddMinutes(-minutes),
		End:   i.End.AddMinutes(minutes),
	}
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not overlap, so back-to-back bookings are allowed.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}
