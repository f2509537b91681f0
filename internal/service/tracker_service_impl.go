package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/obeck/ticklog/internal/domain"
	"github.com/sirupsen/logrus"
)

type trackerService struct {
	mu       sync.Mutex
	session  *domain.Session
	now      func() time.Time
	calendar func() domain.WorkCalendar
	log      *logrus.Logger
}

// NewTrackerService creates the session state machine. The calendar provider
// is consulted at stop time so settings changes apply to the next entry.
func NewTrackerService(calendar func() domain.WorkCalendar, log *logrus.Logger) TrackerService {
	return &trackerService{
		now:      time.Now,
		calendar: calendar,
		log:      log,
	}
}

func (t *trackerService) Start(ticket string) (*domain.Session, error) {
	normalized, err := domain.NormalizeTicket(ticket)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session != nil {
		return nil, domain.ErrSessionActive
	}

	t.session = &domain.Session{
		ID:        uuid.New().String(),
		Ticket:    normalized,
		StartedAt: t.now(),
	}
	t.log.WithFields(logrus.Fields{
		"session": t.session.ID,
		"ticket":  normalized,
	}).Info("session started")

	started := *t.session
	return &started, nil
}

func (t *trackerService) Stop(comment string) (*domain.LogEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return nil, domain.ErrNoSession
	}

	entry := domain.NewLogEntry(t.session, t.now(), comment, t.calendar())
	t.log.WithFields(logrus.Fields{
		"session":   t.session.ID,
		"ticket":    entry.Ticket,
		"timespent": entry.TimeSpent,
	}).Info("session stopped")

	// Discard the session before the caller persists the entry; a retry
	// after a failed write must not count the interval twice.
	t.session = nil

	return entry, nil
}

func (t *trackerService) Elapsed() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return 0, false
	}
	return t.now().Sub(t.session.StartedAt), true
}

func (t *trackerService) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session != nil
}

func (t *trackerService) Ticket() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return ""
	}
	return t.session.Ticket
}
