package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gorewood/worklog/internal/config"
	"github.com/gorewood/worklog/internal/journal"
	"github.com/gorewood/worklog/internal/orgdoc"
	"github.com/gorewood/worklog/internal/output"
)

// appEnv bundles what a command needs to touch journals.
type appEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *journal.Store
	appender *journal.Appender
}

// loadAppEnv reads configuration and wires the journal store for cmd.
// Logs go to the command's stderr.
func loadAppEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, output.NewUserError("invalid configuration: " + err.Error())
	}

	level := cfg.SlogLevel()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded",
		"journals_dir", cfg.JournalsDir,
		"heading", cfg.Heading,
		"config_dir", config.Dir(),
	)

	store := journal.NewStore(cfg.JournalsDir, cfg.Extension)
	appender := journal.NewAppender(store, cfg.Heading, orgdoc.Template{OptionsLine: cfg.OptionsLine}, logger)

	return &appEnv{cfg: cfg, logger: logger, store: store, appender: appender}, nil
}
