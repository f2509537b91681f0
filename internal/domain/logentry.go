package domain

import (
	"strings"
	"time"
)

// LogEntry is one finalized record of a completed session, ready to be
// appended to the daily log file. Immutable once constructed.
type LogEntry struct {
	Ticket    string
	StartDate string
	TimeSpent string
	Comment   string
}

// NewLogEntry finalizes a session that stopped at the given instant.
// A blank comment falls back to a summary generated from the elapsed time.
func NewLogEntry(s *Session, stoppedAt time.Time, comment string, cal WorkCalendar) *LogEntry {
	elapsed := stoppedAt.Sub(s.StartedAt)
	c := strings.TrimSpace(comment)
	if c == "" {
		c = FormatComment(elapsed)
	}
	return &LogEntry{
		Ticket:    s.Ticket,
		StartDate: FormatTimestamp(s.StartedAt),
		TimeSpent: FormatAggregate(elapsed, cal),
		Comment:   c,
	}
}
