package service

import (
	"context"
	"fmt"
	"os"

	"github.com/obeck/ticklog/internal/config"
	"github.com/obeck/ticklog/internal/domain"
	"github.com/obeck/ticklog/internal/notify"
	"github.com/sirupsen/logrus"
)

type settingsService struct {
	notifier notify.Notifier
	log      *logrus.Logger
}

// NewSettingsService creates the settings facade. Reads go to disk every
// time so external edits to settings.yaml are picked up without a restart.
func NewSettingsService(notifier notify.Notifier, log *logrus.Logger) SettingsService {
	return &settingsService{notifier: notifier, log: log}
}

func (s *settingsService) StorageFolder() (string, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return "", err
	}
	return settings.StorageFolder, nil
}

func (s *settingsService) SetStorageFolder(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("storage folder %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage folder %s is not a directory", path)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	settings.StorageFolder = path
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	if err := s.notifier.Notify("ticklog", "Storage folder changed to: "+path); err != nil {
		s.log.WithError(err).Debug("folder-change notification skipped")
	}
	s.log.WithField("folder", path).Info("storage folder changed")
	return nil
}

func (s *settingsService) Tickets() []string {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil
	}
	return settings.Tickets
}

func (s *settingsService) Calendar() domain.WorkCalendar {
	settings, err := config.LoadSettings()
	if err != nil {
		return domain.DefaultCalendar()
	}
	return settings.Calendar
}

func (s *settingsService) Reminder() config.ReminderConfig {
	settings, err := config.LoadSettings()
	if err != nil {
		return config.NewSettings().Reminder
	}
	return settings.Reminder
}

func (s *settingsService) FirstRun() bool {
	settings, err := config.LoadSettings()
	if err != nil {
		return false
	}
	if settings.HasRunBefore {
		return false
	}
	settings.HasRunBefore = true
	if err := config.SaveSettings(settings); err != nil {
		s.log.WithError(err).Warn("could not persist first-run flag")
	}
	return true
}
