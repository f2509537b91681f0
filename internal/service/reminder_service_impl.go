package service

import (
	"context"
	"sync"
	"time"

	"github.com/obeck/ticklog/internal/config"
	"github.com/obeck/ticklog/internal/notify"
	"github.com/sirupsen/logrus"
)

const (
	reminderInterval = 5 * time.Minute
	reminderTitle    = "TimeLog Reminder"
	reminderBody     = "Timer is not running during work hours. Start tracking your time!"
)

type reminderService struct {
	mu              sync.Mutex
	lastAlertedHour int

	sessionRunning func() bool
	window         func() config.ReminderConfig
	notifier       notify.Notifier
	now            func() time.Time
	log            *logrus.Logger
}

// NewReminderService creates the business-hours reminder. De-duplication is
// in-memory only: a restart re-arms the current hour.
func NewReminderService(sessionRunning func() bool, window func() config.ReminderConfig, notifier notify.Notifier, log *logrus.Logger) ReminderService {
	return &reminderService{
		lastAlertedHour: -1,
		sessionRunning:  sessionRunning,
		window:          window,
		notifier:        notifier,
		now:             time.Now,
		log:             log,
	}
}

func (r *reminderService) Check(now time.Time) bool {
	if r.sessionRunning() {
		return false
	}

	w := r.window()
	if !w.Enabled {
		return false
	}

	wd := now.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}

	hour := now.Hour()
	if hour < w.StartHour || hour >= w.EndHour {
		return false
	}

	r.mu.Lock()
	if r.lastAlertedHour == hour {
		r.mu.Unlock()
		return false
	}
	r.lastAlertedHour = hour
	r.mu.Unlock()

	if err := r.notifier.Notify(reminderTitle, reminderBody); err != nil {
		// Notification delivery is best-effort; the hour still counts as
		// alerted so a broken backend does not retry every five minutes.
		r.log.WithError(err).Debug("reminder notification skipped")
	}
	r.log.WithField("hour", hour).Info("work-hours reminder emitted")
	return true
}

func (r *reminderService) Run(ctx context.Context) {
	r.Check(r.now())

	ticker := time.NewTicker(reminderInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-ticker.C:
			r.Check(tick)
		}
	}
}
