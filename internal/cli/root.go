package cli

import (
	"github.com/obeck/ticklog/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tracker  service.TrackerService
	Logbook  service.LogbookService
	Settings service.SettingsService
	Reminder service.ReminderService

	// IsInteractive reports whether stdin is a terminal; when true the bare
	// "ticklog" invocation opens the tracker UI instead of printing help.
	IsInteractive func() bool

	Log *logrus.Logger
}

// NewRootCmd creates the top-level "ticklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ticklog",
		Short: "Track time on tickets and append it to a daily log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTracker(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTrackCmd(app),
		newLogCmd(app),
		newFolderCmd(app),
	)

	return root
}
