package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/worklog/internal/draft"
	"github.com/gorewood/worklog/internal/journal"
	"github.com/gorewood/worklog/internal/output"
)

const appendUsage = "usage: worklog append <date> <project> <draft-file>"

// appendFlags holds all flag values for the append command.
type appendFlags struct {
	heading   string
	clipboard bool
	clean     bool
	dryRun    bool
}

// newAppendCmd creates the append command.
func newAppendCmd() *cobra.Command {
	return newAppendCmdInternal(nil)
}

// newAppendCmdInternal creates the append command with an optional
// clipboard reader for tests. If read is nil, the system clipboard is used.
func newAppendCmdInternal(read draft.ClipboardReadFunc) *cobra.Command {
	var flags appendFlags

	cmd := &cobra.Command{
		Use:   "append <date> <project> <draft-file>",
		Short: "Append a draft to the journal for a date",
		Long: `Append the contents of a draft file to the journal for <date>, under the
log heading and the <project> sub-heading.

The draft is read whole with trailing newlines removed. After the journal is
written the draft file is deleted. A missing or empty draft is an error and
leaves both files untouched.

Examples:
  worklog append 2026-02-05 worklog /tmp/draft.md
  worklog append 2026-02-05 worklog --clipboard
  worklog append 2026-02-05 worklog /tmp/draft.md --dry-run
  worklog append 2026-02-05 standup /tmp/notes.md --heading "Meetings"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAppend(cmd, args, flags, read)
		},
	}

	cmd.Flags().StringVar(&flags.heading, "heading", "", "Override the top-level log heading for this entry")
	cmd.Flags().BoolVar(&flags.clipboard, "clipboard", false, "Read the entry from the clipboard instead of a draft file")
	cmd.Flags().BoolVar(&flags.clean, "clean", false, "Strip assistant preamble and sign-off lines from the draft")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the resulting journal without writing it")

	return cmd
}

// runAppend executes the append command.
// Every check runs before the journal is touched; the draft is consumed
// only after the journal has been written.
func runAppend(cmd *cobra.Command, args []string, flags appendFlags, read draft.ClipboardReadFunc) error {
	printer := newPrinter(cmd)

	src, err := appendSource(args, flags, read)
	if err != nil {
		printer.Error(err)
		return err
	}

	entry, err := draft.ReadAll(src)
	if err != nil {
		printer.Error(err)
		return err
	}
	if flags.clean {
		entry = draft.StripChatter(entry)
		if entry == "" {
			err = output.NewUserError("draft file is empty")
			printer.Error(err)
			return err
		}
	}

	env, err := loadAppEnv(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := env.appender.Append(cmd.Context(), journal.Request{
		Date:    args[0],
		Project: args[1],
		Entry:   entry,
		Heading: flags.heading,
		DryRun:  flags.dryRun,
	})
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.dryRun {
		return outputAppendDryRun(printer, result)
	}

	consumeErr := src.Consume()
	if consumeErr != nil && !printer.IsJSON() {
		printer.Warn("entry recorded but draft was not removed: %v", consumeErr)
	}

	return outputAppendResult(printer, result, consumeErr)
}

// appendSource checks the argument count and picks the draft source.
func appendSource(args []string, flags appendFlags, read draft.ClipboardReadFunc) (draft.Source, error) {
	if flags.clipboard {
		if len(args) != 2 {
			return nil, output.NewUserError("usage: worklog append <date> <project> --clipboard")
		}
		return draft.NewClipboardSource(read), nil
	}
	if len(args) != 3 {
		return nil, output.NewUserError(appendUsage)
	}
	return draft.NewFileSource(args[2]), nil
}

// outputAppendResult reports a completed append. In JSON mode a failed
// draft removal is reported inside the single result object.
func outputAppendResult(printer *output.Printer, result *journal.Result, consumeErr error) error {
	if printer.IsJSON() {
		data := map[string]any{
			"status":        "appended",
			"path":          result.Path,
			"created":       result.Created,
			"placement":     result.Placement,
			"draft_removed": consumeErr == nil,
		}
		if consumeErr != nil {
			data["warning"] = "entry recorded but draft was not removed: " + consumeErr.Error()
		}
		return printer.WriteJSON(data)
	}
	return printer.Success(map[string]any{
		"message": "Successfully appended to " + result.Path,
	})
}

// outputAppendDryRun prints the journal as it would be written.
func outputAppendDryRun(printer *output.Printer, result *journal.Result) error {
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"status":    "dry_run",
			"path":      result.Path,
			"created":   result.Created,
			"placement": result.Placement,
			"content":   result.Content,
		})
	}
	printer.Outline(result.Content)
	return nil
}
