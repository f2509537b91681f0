package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout renders instants as "02-Jan-2006 15:04:05" for the
// Start Date column of the log file.
const TimestampLayout = "02-Jan-2006 15:04:05"

// FormatElapsed renders a duration as a live "HH:MM:SS" display string.
// Hours are zero-padded but unbounded; they do not wrap at 24.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// FormatAggregate renders a duration as a work-calendar aggregate such as
// "1w 2d 3h 45m". Units decompose by truncating division: minutes, then
// hours, then calendar days, then calendar weeks. Only nonzero units are
// emitted; sub-minute durations collapse to "0m".
func FormatAggregate(d time.Duration, cal WorkCalendar) string {
	minutes := int(d / time.Minute)
	hours := minutes / 60
	days := hours / cal.HoursPerDay
	weeks := days / cal.DaysPerWeek

	var b strings.Builder
	if weeks > 0 {
		fmt.Fprintf(&b, "%dw ", weeks)
	}
	if rem := days % cal.DaysPerWeek; rem > 0 {
		fmt.Fprintf(&b, "%dd ", rem)
	}
	if rem := hours % cal.HoursPerDay; rem > 0 {
		fmt.Fprintf(&b, "%dh ", rem)
	}
	if rem := minutes % 60; rem > 0 {
		fmt.Fprintf(&b, "%dm", rem)
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "0m"
	}
	return out
}

// FormatComment generates the fallback comment for entries saved without one.
func FormatComment(d time.Duration) string {
	minutes := int(d / time.Minute)
	return fmt.Sprintf("Logs %d hours and %d mins", minutes/60, minutes%60)
}

// FormatTimestamp renders an instant using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
