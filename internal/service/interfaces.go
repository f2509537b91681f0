package service

import (
	"context"
	"time"

	"github.com/obeck/ticklog/internal/config"
	"github.com/obeck/ticklog/internal/domain"
)

// TrackerService is the session state machine: Idle until Start succeeds,
// Running until Stop finalizes the session back to Idle.
type TrackerService interface {
	// Start begins a session for the given ticket. Fails with
	// domain.ErrEmptyTicket on a blank identifier and domain.ErrSessionActive
	// if a session is already running; state is unchanged on failure.
	Start(ticket string) (*domain.Session, error)

	// Stop finalizes the running session into a LogEntry, falling back to a
	// generated comment when the given one is blank. The session is discarded
	// before the entry is persisted, so a failed write never double-counts.
	// Fails with domain.ErrNoSession when idle.
	Stop(comment string) (*domain.LogEntry, error)

	// Elapsed reports time since the session started. The second return is
	// false when idle. Advisory only; Stop computes the stored duration.
	Elapsed() (time.Duration, bool)

	Running() bool
	Ticket() string
}

// LogbookService appends finalized entries to the per-day log file.
type LogbookService interface {
	// Append writes the entry to task_log_{date}.csv in the storage folder,
	// creating the file with a header row if absent, and returns the
	// absolute path of the file written.
	Append(ctx context.Context, entry *domain.LogEntry) (string, error)
}

// SettingsService exposes the persisted settings to the UI and services.
type SettingsService interface {
	StorageFolder() (string, error)
	SetStorageFolder(ctx context.Context, path string) error
	Tickets() []string
	Calendar() domain.WorkCalendar
	Reminder() config.ReminderConfig

	// FirstRun reports whether this is the first launch ever, and marks the
	// first launch as consumed.
	FirstRun() bool
}

// ReminderService nags the user to track time during business hours.
type ReminderService interface {
	// Check runs one reminder decision for the given instant and reports
	// whether a reminder was emitted.
	Check(now time.Time) bool

	// Run checks immediately and then on a fixed interval until the context
	// is cancelled.
	Run(ctx context.Context)
}
