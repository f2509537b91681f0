package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Open the interactive tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTracker(app)
		},
	}
}

// runTracker owns the lifetime of the tracker UI and the reminder loop.
// Both are torn down together when the UI exits.
func runTracker(app *App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.Reminder != nil {
		go app.Reminder.Run(ctx)
	}

	_, err := tea.NewProgram(newTrackerModel(app), tea.WithAltScreen()).Run()
	return err
}
