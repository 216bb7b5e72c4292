package schedule

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
)

var (
	ErrInvalidDate  = errors.New("invalid date format")
	ErrInvalidRange = errors.New("recurrence end date precedes start date")
)

var dateLayouts = []string{
	constant.DateFormat,
	time.RFC3339,
	constant.DateTimeFormat,
}

// NormalizeDate parses a date string and returns the canonical YYYY-MM-DD
// form. Timestamps are truncated to their calendar day.
func NormalizeDate(value string) (string, error) {
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.Format(constant.DateFormat), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange parses and validates an inclusive date span. The end date
// must not precede the start date.
func NewDateRange(startDate, endDate string) (DateRange, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("start date: %w", err)
	}

	end, err := parseDate(endDate)
	if err != nil {
		return DateRange{}, fmt.Errorf("end date: %w", err)
	}

	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, startDate, endDate)
	}

	return DateRange{start: start, end: end}, nil
}

// Len returns the number of calendar days in the range.
func (r DateRange) Len() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

// Days yields each calendar day in canonical YYYY-MM-DD form, in order.
// The sequence is restartable.
func (r DateRange) Days() iter.Seq[string] {
	return func(yield func(string) bool) {
		for day := r.start; !day.After(r.end); day = day.AddDate(0, 0, 1) {
			if !yield(day.Format(constant.DateFormat)) {
				return
			}
		}
	}
}

func parseDate(value string) (time.Time, error) {
	normalized, err := NormalizeDate(value)
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(constant.DateFormat, normalized) //nolint:wrapcheck
}
