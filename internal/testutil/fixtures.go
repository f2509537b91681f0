// Package testutil provides fixtures shared across package tests.
package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/obeck/ticklog/internal/domain"
)

// FakeClock is a manually advanced clock for deterministic time tests.
type FakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{t: t}
}

// Now returns the current fake instant. Pass the method value as a clock
// function: svc.now = clock.Now.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// Notification is one captured (title, body) pair.
type Notification struct {
	Title string
	Body  string
}

// SpyNotifier records notifications instead of delivering them.
type SpyNotifier struct {
	mu   sync.Mutex
	Err  error
	sent []Notification
}

func (s *SpyNotifier) Notify(title, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, Notification{Title: title, Body: body})
	return s.Err
}

func (s *SpyNotifier) Sent() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.sent...)
}

func (s *SpyNotifier) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// TempHome points TICKLOG_HOME at a fresh temp directory for the test and
// returns it, isolating settings and log files.
func TempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TICKLOG_HOME", dir)
	return dir
}

// LogEntry options
type EntryOption func(*domain.LogEntry)

func WithTicket(ticket string) EntryOption {
	return func(e *domain.LogEntry) { e.Ticket = ticket }
}

func WithComment(comment string) EntryOption {
	return func(e *domain.LogEntry) { e.Comment = comment }
}

// NewTestEntry builds a plausible finalized log entry.
func NewTestEntry(opts ...EntryOption) *domain.LogEntry {
	e := &domain.LogEntry{
		Ticket:    "ABC-1",
		StartDate: "01-Jan-2024 09:00:00",
		TimeSpent: "2m",
		Comment:   "Logs 0 hours and 2 mins",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
