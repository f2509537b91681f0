package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/obeck/ticklog/internal/logging"
	"github.com/obeck/ticklog/internal/service"
	"github.com/obeck/ticklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App against a temp home and storage folder.
func testApp(t *testing.T) (*App, string) {
	t.Helper()
	testutil.TempHome(t)

	logger := logging.Discard()
	spy := &testutil.SpyNotifier{}
	settings := service.NewSettingsService(spy, logger)

	folder := t.TempDir()
	require.NoError(t, settings.SetStorageFolder(context.Background(), folder))
	settings.FirstRun() // consume so the TUI does not open the folder form

	tracker := service.NewTrackerService(settings.Calendar, logger)
	logbook := service.NewLogbookService(settings.StorageFolder, logger)
	reminder := service.NewReminderService(tracker.Running, settings.Reminder, spy, logger)

	return &App{
		Tracker:  tracker,
		Logbook:  logbook,
		Settings: settings,
		Reminder: reminder,
		Log:      logger,
	}, folder
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	root := NewRootCmd(app)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err := root.Execute()
	return buf.String(), err
}

func TestLogCmd_AppendsEntry(t *testing.T) {
	app, folder := testApp(t)

	out, err := runCommand(t, app, "log", "--ticket", "ABC-1", "--minutes", "125")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged 2h 5m for ABC-1")

	path := filepath.Join(folder, service.LogFileName(time.Now()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Ticket No,Start Date,Timespent,Comment", lines[0])
	assert.Contains(t, lines[1], `"ABC-1"`)
	assert.Contains(t, lines[1], `"2h 5m"`)
	assert.Contains(t, lines[1], `"Logs 2 hours and 5 mins"`)
}

func TestLogCmd_RejectsBlankTicket(t *testing.T) {
	app, _ := testApp(t)

	_, err := runCommand(t, app, "log", "--ticket", "   ", "--minutes", "10")
	assert.Error(t, err)
}

func TestLogCmd_RejectsNonPositiveMinutes(t *testing.T) {
	app, _ := testApp(t)

	_, err := runCommand(t, app, "log", "--ticket", "ABC-1", "--minutes", "0")
	assert.Error(t, err)
}

func TestFolderCmd(t *testing.T) {
	app, folder := testApp(t)

	out, err := runCommand(t, app, "folder")
	require.NoError(t, err)
	assert.Equal(t, folder, strings.TrimSpace(out))

	next := t.TempDir()
	out, err = runCommand(t, app, "folder", "set", next)
	require.NoError(t, err)
	assert.Contains(t, out, next)

	out, err = runCommand(t, app, "folder")
	require.NoError(t, err)
	assert.Equal(t, next, strings.TrimSpace(out))
}

func TestFolderCmd_SetMissingDir(t *testing.T) {
	app, folder := testApp(t)

	_, err := runCommand(t, app, "folder", "set", filepath.Join(folder, "missing"))
	assert.Error(t, err)
}
