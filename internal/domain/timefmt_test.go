package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"zero", 0, "00:00:00"},
		{"one second", time.Second, "00:00:01"},
		{"one of each", 3661 * time.Second, "01:01:01"},
		{"sub-second truncates", 900 * time.Millisecond, "00:00:00"},
		{"negative clamps to zero", -time.Minute, "00:00:00"},
		{"hours do not wrap at 24", 25 * time.Hour, "25:00:00"},
		{"large", 99*time.Hour + 59*time.Minute + 59*time.Second, "99:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(tt.input))
		})
	}
}

func TestFormatElapsed_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}$`)
	for d := time.Duration(0); d <= 99*time.Hour; d += 17*time.Minute + 13*time.Second {
		assert.Regexp(t, pattern, FormatElapsed(d))
	}
}

func TestFormatAggregate(t *testing.T) {
	cal := DefaultCalendar()

	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"zero", 0, "0m"},
		{"sub-minute floors to zero", 59 * time.Second, "0m"},
		{"ninety seconds floors to one minute", 90 * time.Second, "1m"},
		{"one hour", time.Hour, "1h"},
		{"one workday", 8 * time.Hour, "1d"},
		{"one workweek", 5 * 8 * time.Hour, "1w"},
		{"mixed units", 5*8*time.Hour + 8*time.Hour + time.Hour + time.Minute, "1w 1d 1h 1m"},
		{"skips zero units", 8*time.Hour + 15*time.Minute, "1d 15m"},
		{"day boundary not clock hours", 9 * time.Hour, "1d 1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAggregate(tt.input, cal))
		})
	}
}

func TestFormatAggregate_CustomCalendar(t *testing.T) {
	cal := WorkCalendar{HoursPerDay: 6, DaysPerWeek: 4}

	assert.Equal(t, "1d", FormatAggregate(6*time.Hour, cal))
	assert.Equal(t, "1w", FormatAggregate(24*time.Hour, cal))
	assert.Equal(t, "1w 1d 1h", FormatAggregate(31*time.Hour, cal))
}

func TestFormatComment(t *testing.T) {
	assert.Equal(t, "Logs 2 hours and 5 mins", FormatComment(125*time.Minute))
	assert.Equal(t, "Logs 0 hours and 0 mins", FormatComment(30*time.Second))
	assert.Equal(t, "Logs 1 hours and 0 mins", FormatComment(time.Hour))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "01-Jan-2024 09:00:00", FormatTimestamp(ts))

	ts = time.Date(2025, time.December, 31, 23, 59, 9, 0, time.UTC)
	assert.Equal(t, "31-Dec-2025 23:59:09", FormatTimestamp(ts))
}
