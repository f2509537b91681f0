package config

import (
	"path/filepath"
	"testing"

	"github.com/obeck/ticklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("TICKLOG_HOME", t.TempDir())

	s, err := LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 1, s.Version)
	assert.False(t, s.HasRunBefore)
	assert.NotEmpty(t, s.StorageFolder, "storage folder resolves to a default")
	assert.Equal(t, domain.DefaultCalendar(), s.Calendar)
	assert.True(t, s.Reminder.Enabled)
	assert.Equal(t, 10, s.Reminder.StartHour)
	assert.Equal(t, 17, s.Reminder.EndHour)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TICKLOG_HOME", home)

	s, err := LoadSettings()
	require.NoError(t, err)

	s.StorageFolder = filepath.Join(home, "logs")
	s.HasRunBefore = true
	s.Tickets = []string{"ABC-1", "ABC-2"}
	require.NoError(t, SaveSettings(s))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, s.StorageFolder, loaded.StorageFolder)
	assert.True(t, loaded.HasRunBefore)
	assert.Equal(t, []string{"ABC-1", "ABC-2"}, loaded.Tickets)
}

func TestLoadSettings_NormalizesInvalidCalendar(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TICKLOG_HOME", home)

	s, err := LoadSettings()
	require.NoError(t, err)
	s.Calendar = domain.WorkCalendar{HoursPerDay: 0, DaysPerWeek: 0}
	require.NoError(t, SaveSettings(s))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCalendar(), loaded.Calendar, "invalid calendar is repaired on load")
}
