package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/schedule"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "24 hour with seconds", input: "14:30:00", want: "14:30:00"},
		{name: "24 hour without seconds", input: "14:30", want: "14:30:00"},
		{name: "24 hour single digit hour", input: "9:05", want: "09:05:00"},
		{name: "12 hour afternoon", input: "2:30 PM", want: "14:30:00"},
		{name: "12 hour morning", input: "2:30 AM", want: "02:30:00"},
		{name: "midnight", input: "12:00 AM", want: "00:00:00"},
		{name: "noon", input: "12:00 PM", want: "12:00:00"},
		{name: "lowercase meridiem", input: "7:45 pm", want: "19:45:00"},
		{name: "meridiem without space", input: "7:45PM", want: "19:45:00"},
		{name: "12 hour with seconds", input: "2:30:15 PM", want: "14:30:15"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:61", wantErr: true},
		{name: "12 hour zero hour", input: "0:30 PM", wantErr: true},
		{name: "garbage", input: "half past nine", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.NormalizeTime(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidTime)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "canonical", input: "2024-01-10", want: "2024-01-10"},
		{name: "rfc3339", input: "2024-01-10T08:00:00Z", want: "2024-01-10"},
		{name: "datetime", input: "2024-01-10 08:00:00", want: "2024-01-10"},
		{name: "impossible day", input: "2024-02-30", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.NormalizeDate(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidDate)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewInterval(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		interval, err := schedule.NewInterval("09:00:00", "10:00:00")

		require.NoError(t, err)
		assert.Equal(t, "09:00:00", interval.Start.String())
		assert.Equal(t, "10:00:00", interval.End.String())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := schedule.NewInterval("09:00:00", "09:00:00")

		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := schedule.NewInterval("10:00:00", "09:00:00")

		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("unparseable start", func(t *testing.T) {
		_, err := schedule.NewInterval("soon", "10:00:00")

		assert.ErrorIs(t, err, schedule.ErrInvalidTime)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	existing, err := schedule.NewInterval("09:00:00", "10:00:00")
	require.NoError(t, err)

	tests := []struct {
		name      string
		start     string
		end       string
		buffer    int
		wantClash bool
	}{
		{name: "back to back after with zero buffer", start: "10:00:00", end: "11:00:00", wantClash: false},
		{name: "back to back before with zero buffer", start: "08:00:00", end: "09:00:00", wantClash: false},
		{name: "contained inside", start: "09:30:00", end: "09:45:00", wantClash: true},
		{name: "partial overlap at end", start: "09:45:00", end: "10:30:00", wantClash: true},
		{name: "partial overlap at start", start: "08:30:00", end: "09:15:00", wantClash: true},
		{name: "covering", start: "08:00:00", end: "11:00:00", wantClash: true},
		{name: "disjoint", start: "11:00:00", end: "12:00:00", wantClash: false},
		{name: "back to back blocked by buffer", start: "10:00:00", end: "11:00:00", buffer: 15, wantClash: true},
		{name: "beyond buffer margin", start: "10:15:00", end: "11:00:00", buffer: 15, wantClash: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, err := schedule.NewInterval(tt.start, tt.end)
			require.NoError(t, err)

			got := candidate.WithBuffer(tt.buffer).Overlaps(existing)

			assert.Equal(t, tt.wantClash, got)
		})
	}
}

func TestIntervalBufferMonotonicity(t *testing.T) {
	existing, err := schedule.NewInterval("09:00:00", "10:00:00")
	require.NoError(t, err)

	candidate, err := schedule.NewInterval("10:10:00", "11:00:00")
	require.NoError(t, err)

	conflicted := false

	// Once a buffer blocks the slot, every larger buffer must block it too.
	for buffer := 0; buffer <= 120; buffer += 5 {
		clash := candidate.WithBuffer(buffer).Overlaps(existing)

		if conflicted {
			assert.True(t, clash, "buffer %d un-blocked a conflict", buffer)
		}

		conflicted = conflicted || clash
	}

	assert.True(t, conflicted)
}

func TestIntervalWithBufferClampsToDay(t *testing.T) {
	early, err := schedule.NewInterval("00:10:00", "01:00:00")
	require.NoError(t, err)

	buffered := early.WithBuffer(30)
	assert.Equal(t, "00:00:00", buffered.Start.String())

	late, err := schedule.NewInterval("23:00:00", "23:50:00")
	require.NoError(t, err)

	buffered = late.WithBuffer(30)
	assert.Equal(t, schedule.TimeOfDay(86400), buffered.End)
}

func TestDateRange(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		r, err := schedule.NewDateRange("2024-01-10", "2024-01-10")

		require.NoError(t, err)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("expands inclusive span", func(t *testing.T) {
		r, err := schedule.NewDateRange("2024-01-30", "2024-02-02")
		require.NoError(t, err)

		var days []string
		for day := range r.Days() {
			days = append(days, day)
		}

		assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, days)
		assert.Equal(t, 4, r.Len())
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		r, err := schedule.NewDateRange("2024-01-10", "2024-01-12")
		require.NoError(t, err)

		seq := r.Days()

		first := 0
		for range seq {
			first++
		}

		second := 0
		for range seq {
			second++
		}

		assert.Equal(t, first, second)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := schedule.NewDateRange("2024-01-10", "2024-01-09")

		assert.ErrorIs(t, err, schedule.ErrInvalidRange)
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, err := schedule.NewDateRange("2024-01-10", "2024-13-01")

		assert.ErrorIs(t, err, schedule.ErrInvalidDate)
	})
}
