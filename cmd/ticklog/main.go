package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/obeck/ticklog/internal/cli"
	"github.com/obeck/ticklog/internal/logging"
	"github.com/obeck/ticklog/internal/notify"
	"github.com/obeck/ticklog/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()
	notifier := notify.NewDesktop()

	// Wire services. Settings reads go to disk so folder changes apply to
	// the very next append.
	settingsSvc := service.NewSettingsService(notifier, logger)
	trackerSvc := service.NewTrackerService(settingsSvc.Calendar, logger)
	logbookSvc := service.NewLogbookService(settingsSvc.StorageFolder, logger)
	reminderSvc := service.NewReminderService(trackerSvc.Running, settingsSvc.Reminder, notifier, logger)

	app := &cli.App{
		Tracker:  trackerSvc,
		Logbook:  logbookSvc,
		Settings: settingsSvc,
		Reminder: reminderSvc,
		Log:      logger,
	}

	// Detect interactive terminal for the bare-invocation tracker UI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
