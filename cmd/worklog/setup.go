package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/worklog/internal/output"
	"github.com/gorewood/worklog/internal/setup"
)

// setupClaudeFlags holds all flag values for the setup claude command.
type setupClaudeFlags struct {
	project bool
	check   bool
	remove  bool
	force   bool
	dryRun  bool
}

// newSetupCmd creates the setup parent command.
func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure agent integrations",
		Long: `Configure worklog integrations with coding agents.

Subcommands:
  claude    Install the work-logger skill for Claude Code`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSetupClaudeCmd())
	return cmd
}

// newSetupClaudeCmd creates the claude subcommand for setup.
func newSetupClaudeCmd() *cobra.Command {
	var flags setupClaudeFlags

	cmd := &cobra.Command{
		Use:   "claude",
		Short: "Install the work-logger skill for Claude Code",
		Long: `Install a skill that tells Claude Code to write a draft summary and record
it with 'worklog append'.

By default, installs globally to ~/.claude/skills/work-logger/. Use --project
to install for the current repository only.

Examples:
  worklog setup claude           # Install globally
  worklog setup claude --project # Install for this project
  worklog setup claude --check   # Check if installed
  worklog setup claude --remove  # Uninstall
  worklog setup claude --dry-run # Show what would be done`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetupClaude(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.project, "project", false, "Install for this project only")
	cmd.Flags().BoolVar(&flags.check, "check", false, "Check installation status without changes")
	cmd.Flags().BoolVar(&flags.remove, "remove", false, "Remove the skill")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Replace a skill file not written by worklog")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// runSetupClaude executes the setup claude command.
func runSetupClaude(cmd *cobra.Command, flags setupClaudeFlags) error {
	printer := newPrinter(cmd)

	path, scope, err := setup.ResolveSkillPath(flags.project)
	if err != nil {
		printer.Error(err)
		return err
	}

	switch {
	case flags.check:
		return runSetupClaudeCheck(printer, path, scope)
	case flags.remove:
		return runSetupClaudeApply(printer, path, scope, "removed", flags.dryRun, setup.RemoveSkill)
	default:
		install := func(p string) error { return setup.InstallSkill(p, flags.force) }
		return runSetupClaudeApply(printer, path, scope, "installed", flags.dryRun, install)
	}
}

func runSetupClaudeCheck(printer *output.Printer, path, scope string) error {
	installed := setup.IsSkillInstalled(path)
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"installed": installed,
			"scope":     scope,
			"location":  path,
		})
	}

	status := "not installed"
	if installed {
		status = "installed"
	}
	printer.KeyValue("Skill", status)
	printer.KeyValue("Scope", scope)
	printer.KeyValue("Location", path)
	return nil
}

// runSetupClaudeApply runs an install or remove action and reports it.
func runSetupClaudeApply(
	printer *output.Printer, path, scope, action string, dryRun bool, apply func(string) error,
) error {
	if dryRun {
		if printer.IsJSON() {
			return printer.WriteJSON(map[string]any{
				"status":   "dry_run",
				"action":   action,
				"scope":    scope,
				"location": path,
			})
		}
		printer.Println("Would be " + action + ": " + path)
		return nil
	}

	if err := apply(path); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"status":   action,
			"scope":    scope,
			"location": path,
		})
	}
	return printer.Success(map[string]any{
		"message": "Skill " + action + " (" + scope + "): " + path,
	})
}
