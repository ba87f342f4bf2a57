package main

import (
	"github.com/spf13/cobra"
)

// newPathCmd creates the path command.
func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <date>",
		Short: "Print the journal path for a date",
		Long: `Print the journal file path for <date> as resolved from configuration.
The file does not need to exist.

Examples:
  worklog path 2026-02-05
  $EDITOR "$(worklog path 2026-02-05)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			env, err := loadAppEnv(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}

			path, err := env.store.Path(args[0])
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{"path": path})
			}
			printer.Println(path)
			return nil
		},
	}
}
