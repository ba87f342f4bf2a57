package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults for a fresh install.
const (
	DefaultJournalsDir = "~/Notes/journals"
	DefaultExtension   = ".org"
	DefaultHeading     = "Claude 作業ログ"
	DefaultOptionsLine = "#+OPTIONS: ^:{}"
	DefaultLogLevel    = "warn"
)

// FileName is the config file looked up inside Dir().
const FileName = "config.yaml"

// Config holds all worklog settings.
type Config struct {
	// JournalsDir holds one journal file per day.
	JournalsDir string `yaml:"journals_dir"`
	// Extension is appended to the date to form the journal file name.
	Extension string `yaml:"extension"`
	// Heading is the level-1 title entries are filed under.
	Heading string `yaml:"heading"`
	// OptionsLine is the first line of a newly created journal.
	OptionsLine string `yaml:"options_line"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		JournalsDir: DefaultJournalsDir,
		Extension:   DefaultExtension,
		Heading:     DefaultHeading,
		OptionsLine: DefaultOptionsLine,
		LogLevel:    DefaultLogLevel,
	}
}

// Load builds the effective configuration.
//
// Resolution order, later wins:
//  1. built-in defaults
//  2. <Dir()>/config.yaml
//  3. WORKLOG_* environment variables, after .env.local, .env and
//     <Dir()>/env are loaded (variables already set are never overridden)
func Load() (*Config, error) {
	LoadEnvFiles()

	path := ""
	if dir := Dir(); dir != "" {
		path = filepath.Join(dir, FileName)
	}
	return LoadFrom(path)
}

// LoadFrom is Load without env file discovery, reading the YAML file at path.
// A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	cfg.JournalsDir = ExpandHome(cfg.JournalsDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFiles loads env files in priority order. First match for each
// variable wins; variables already in the environment always win.
//
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <Dir()>/env
func LoadEnvFiles() {
	files := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	for _, file := range files {
		// godotenv.Load fails on the first missing file, so load one at a time.
		_ = godotenv.Load(file)
	}
}

// applyEnv overrides fields from WORKLOG_* variables.
func (c *Config) applyEnv() {
	overrides := []struct {
		key   string
		field *string
	}{
		{"WORKLOG_JOURNALS_DIR", &c.JournalsDir},
		{"WORKLOG_EXTENSION", &c.Extension},
		{"WORKLOG_HEADING", &c.Heading},
		{"WORKLOG_OPTIONS_LINE", &c.OptionsLine},
		{"WORKLOG_LOG_LEVEL", &c.LogLevel},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.field = v
		}
	}
}

// Validate checks settings that would otherwise produce unusable paths.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JournalsDir) == "" {
		return errors.New("journals_dir must not be empty")
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain a path separator", c.Extension)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level. Validate has already
// rejected unknown names, so errors fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// ParseLogLevel maps a level name to a slog.Level. Empty means warn.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log_level %q", name)
	}
}
