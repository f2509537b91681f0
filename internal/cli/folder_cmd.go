package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newFolderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Show the log storage folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := app.Settings.StorageFolder()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), folder)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <path>",
		Short: "Change the log storage folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.SetStorageFolder(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Storage folder changed to: %s\n", args[0])
			return nil
		},
	})

	return cmd
}
