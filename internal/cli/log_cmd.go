package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/obeck/ticklog/internal/domain"
	"github.com/spf13/cobra"
)

// newLogCmd appends a completed interval directly, for scripting and for
// backfilling time that was never tracked live.
func newLogCmd(app *App) *cobra.Command {
	var ticket, comment string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Append a completed interval to today's log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			normalized, err := domain.NormalizeTicket(ticket)
			if err != nil {
				return err
			}
			if minutes <= 0 {
				return fmt.Errorf("minutes must be positive, got %d", minutes)
			}

			stoppedAt := time.Now()
			s := &domain.Session{
				ID:        uuid.New().String(),
				Ticket:    normalized,
				StartedAt: stoppedAt.Add(-time.Duration(minutes) * time.Minute),
			}
			entry := domain.NewLogEntry(s, stoppedAt, comment, app.Settings.Calendar())

			path, err := app.Logbook.Append(context.Background(), entry)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %s (%s)\n", entry.TimeSpent, entry.Ticket, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&ticket, "ticket", "", "Ticket identifier")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Interval length in minutes")
	cmd.Flags().StringVar(&comment, "comment", "", "Work log comment (generated from the duration if blank)")
	_ = cmd.MarkFlagRequired("ticket")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}
