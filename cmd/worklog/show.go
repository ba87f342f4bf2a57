package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/worklog/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var headingFlag string

	cmd := &cobra.Command{
		Use:   "show <date> [project]",
		Short: "Print a journal or one project's section",
		Long: `Print the journal for <date>. With [project], print only that project's
section under the log heading.

Examples:
  worklog show 2026-02-05
  worklog show 2026-02-05 worklog
  worklog show 2026-02-05 worklog --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := ""
			if len(args) == 2 {
				project = args[1]
			}
			return runShow(cmd, args[0], project, headingFlag)
		},
	}

	cmd.Flags().StringVar(&headingFlag, "heading", "", "Override the top-level log heading")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, date, project, heading string) error {
	printer := newPrinter(cmd)

	env, err := loadAppEnv(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	if heading == "" {
		heading = env.cfg.Heading
	}

	view, err := env.store.Lookup(date, heading, project)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(view)
	}

	if !view.Found {
		what := "journal " + view.Path
		if project != "" {
			what = "section " + project + " in " + view.Path
		}
		err := output.NewUserError("no " + what)
		printer.Error(err)
		return err
	}

	printer.Outline(view.Content)
	return nil
}
