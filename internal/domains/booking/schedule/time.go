package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidTime     = errors.New("invalid time format")
	ErrInvalidInterval = errors.New("start time must be before end time")
)

var (
	time24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	time12Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AaPp])\.?[Mm]\.?$`)
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// TimeOfDay is a clock time expressed as seconds since midnight. The value
// secondsPerDay is a valid exclusive endpoint for intervals ending at
// midnight.
type TimeOfDay int

// NormalizeTime parses a 12-hour ("2:30 PM") or 24-hour ("14:30" /
// "14:30:00") clock string. Seconds default to zero when omitted.
func NormalizeTime(value string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(value)

	if match := time12Pattern.FindStringSubmatch(trimmed); match != nil {
		hour, _ := strconv.Atoi(match[1])
		minute, _ := strconv.Atoi(match[2])
		second := 0

		if match[3] != "" {
			second, _ = strconv.Atoi(match[3])
		}

		if hour < 1 || hour > 12 || minute > 59 || second > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
		}

		// 12 AM is midnight, 12 PM is noon.
		if hour == 12 {
			hour = 0
		}

		if strings.EqualFold(match[4], "p") {
			hour += 12
		}

		return fromClock(hour, minute, second), nil
	}

	if match := time24Pattern.FindStringSubmatch(trimmed); match != nil {
		hour, _ := strconv.Atoi(match[1])
		minute, _ := strconv.Atoi(match[2])
		second := 0

		if match[3] != "" {
			second, _ = strconv.Atoi(match[3])
		}

		if hour > 23 || minute > 59 || second > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
		}

		return fromClock(hour, minute, second), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
}

func fromClock(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*secondsPerHour + minute*secondsPerMinute + second)
}

// String renders the canonical zero-padded 24-hour form HH:MM:SS.
func (t TimeOfDay) String() string {
	seconds := int(t)

	return fmt.Sprintf("%02d:%02d:%02d",
		seconds/secondsPerHour,
		seconds%secondsPerHour/secondsPerMinute,
		seconds%secondsPerMinute,
	)
}

// AddMinutes shifts the time forward or backward, clamped to the same day.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	shifted := int(t) + minutes*secondsPerMinute

	if shifted < 0 {
		return 0
	}

	if shifted > secondsPerDay {
		return secondsPerDay
	}

	return TimeOfDay(shifted)
}
