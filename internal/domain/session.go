package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyTicket is returned when a session is started without a ticket.
	ErrEmptyTicket = errors.New("ticket is required")

	// ErrSessionActive is returned when a session is started while another is running.
	ErrSessionActive = errors.New("a session is already running")

	// ErrNoSession is returned when an operation requires a running session.
	ErrNoSession = errors.New("no session is running")
)

// Session is one continuous timed interval against a single ticket.
// At most one session exists at a time; it is owned by the tracker service
// and discarded once finalized into a LogEntry.
type Session struct {
	ID        string
	Ticket    string
	StartedAt time.Time
}

// NormalizeTicket trims surrounding whitespace from a ticket identifier.
// Returns ErrEmptyTicket if nothing remains.
func NormalizeTicket(raw string) (string, error) {
	ticket := strings.TrimSpace(raw)
	if ticket == "" {
		return "", ErrEmptyTicket
	}
	return ticket, nil
}
