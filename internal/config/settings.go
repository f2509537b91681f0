package config

import (
	"github.com/obeck/ticklog/internal/domain"
)

// ReminderConfig holds the business-hours reminder window. Hours are an
// inclusive-exclusive range on the 24h clock; the weekday test (Mon-Fri)
// is fixed.
type ReminderConfig struct {
	Enabled   bool `yaml:"enabled"`
	StartHour int  `yaml:"start_hour"`
	EndHour   int  `yaml:"end_hour"`
}

// Settings represents the persisted application settings.
// This corresponds to ~/.ticklog/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	StorageFolder string              `yaml:"storage_folder"`
	HasRunBefore  bool                `yaml:"has_run_before"`
	Tickets       []string            `yaml:"tickets"`
	Calendar      domain.WorkCalendar `yaml:"calendar"`
	Reminder      ReminderConfig      `yaml:"reminder"`
}

// NewSettings creates settings with default values. The storage folder is
// left empty here and resolved to the user's Documents directory on load.
func NewSettings() *Settings {
	return &Settings{
		Version:  1,
		Calendar: domain.DefaultCalendar(),
		Reminder: ReminderConfig{Enabled: true, StartHour: 10, EndHour: 17},
	}
}

// normalize repairs fields that are missing or invalid in the file so the
// rest of the program can rely on them.
func (s *Settings) normalize() error {
	if s.StorageFolder == "" {
		folder, err := DefaultStorageFolder()
		if err != nil {
			return err
		}
		s.StorageFolder = folder
	}
	if s.Calendar.Validate() != nil {
		s.Calendar = domain.DefaultCalendar()
	}
	if s.Reminder.StartHour == 0 && s.Reminder.EndHour == 0 {
		s.Reminder = ReminderConfig{Enabled: true, StartHour: 10, EndHour: 17}
	}
	return nil
}

// LoadSettings loads settings from ~/.ticklog/settings.yaml.
// A missing file yields defaults; a malformed one is an error.
func LoadSettings() (*Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, NewSettings)
	if err != nil {
		return nil, err
	}
	if err := settings.normalize(); err != nil {
		return nil, err
	}
	return settings, nil
}

// SaveSettings saves settings to ~/.ticklog/settings.yaml.
func SaveSettings(settings *Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
