package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WORKLOG_JOURNALS_DIR", "WORKLOG_EXTENSION", "WORKLOG_HEADING",
		"WORKLOG_OPTIONS_LINE", "WORKLOG_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Heading != DefaultHeading {
		t.Errorf("Heading = %q, want %q", cfg.Heading, DefaultHeading)
	}
	if cfg.Extension != DefaultExtension {
		t.Errorf("Extension = %q, want %q", cfg.Extension, DefaultExtension)
	}
	if cfg.OptionsLine != DefaultOptionsLine {
		t.Errorf("OptionsLine = %q, want %q", cfg.OptionsLine, DefaultOptionsLine)
	}
	if cfg.JournalsDir == DefaultJournalsDir {
		t.Errorf("JournalsDir = %q, want ~ expanded", cfg.JournalsDir)
	}
}

func TestLoadFrom_YAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `journals_dir: /data/journals
heading: Work Log
options_line: "#+STARTUP: showall"
log_level: debug
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.JournalsDir != "/data/journals" {
		t.Errorf("JournalsDir = %q, want %q", cfg.JournalsDir, "/data/journals")
	}
	if cfg.Heading != "Work Log" {
		t.Errorf("Heading = %q, want %q", cfg.Heading, "Work Log")
	}
	if cfg.OptionsLine != "#+STARTUP: showall" {
		t.Errorf("OptionsLine = %q", cfg.OptionsLine)
	}
	if cfg.Extension != DefaultExtension {
		t.Errorf("Extension = %q, want default %q", cfg.Extension, DefaultExtension)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
}

func TestLoadFrom_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "heading: From File\njournals_dir: /from/file\n")
	t.Setenv("WORKLOG_HEADING", "From Env")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Heading != "From Env" {
		t.Errorf("Heading = %q, want %q", cfg.Heading, "From Env")
	}
	if cfg.JournalsDir != "/from/file" {
		t.Errorf("JournalsDir = %q, want %q", cfg.JournalsDir, "/from/file")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "heading: [unclosed"},
		{name: "extension with separator", content: "extension: ../x"},
		{name: "unknown log level", content: "log_level: loud"},
		{name: "blank journals dir", content: "journals_dir: \"  \""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, tt.content)

			if _, err := LoadFrom(path); err == nil {
				t.Error("LoadFrom() expected error")
			}
		})
	}
}

func TestLoad_ReadsConfigDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("WORKLOG_CONFIG_HOME", dir)
	t.Chdir(t.TempDir())

	writeFile(t, filepath.Join(dir, FileName), "heading: Configured\n")
	writeFile(t, filepath.Join(dir, "env"), "WORKLOG_EXTENSION=.txt\n")
	t.Cleanup(func() { _ = os.Unsetenv("WORKLOG_EXTENSION") })
	// godotenv skips keys that are present, even when blank.
	_ = os.Unsetenv("WORKLOG_EXTENSION")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Heading != "Configured" {
		t.Errorf("Heading = %q, want %q", cfg.Heading, "Configured")
	}
	if cfg.Extension != ".txt" {
		t.Errorf("Extension = %q, want %q", cfg.Extension, ".txt")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
