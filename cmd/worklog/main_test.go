package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/fang"

	"github.com/gorewood/worklog/internal/output"
)

// setupJournals points configuration at fresh temp directories and returns
// the journals directory.
func setupJournals(t *testing.T) string {
	t.Helper()
	journals := t.TempDir()
	t.Setenv("WORKLOG_CONFIG_HOME", t.TempDir())
	t.Setenv("WORKLOG_JOURNALS_DIR", journals)
	t.Setenv("WORKLOG_EXTENSION", "")
	t.Setenv("WORKLOG_HEADING", "")
	t.Setenv("WORKLOG_OPTIONS_LINE", "")
	t.Setenv("WORKLOG_LOG_LEVEL", "")
	return journals
}

// executeRoot runs the root command with args and returns stdout and stderr.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	stdout, _, err := executeRoot(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "worklog") {
		t.Errorf("--version output should contain 'worklog': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeRoot(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"worklog", "Usage:", "append", "show", "path", "serve", "--json"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q", expected)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	stdout, _, err := executeRoot(t, "--json")
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Expected JSON error output: %v\nOutput: %s", err, stdout)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output missing 'error': %v", result)
	}
}

func TestBuildVersion(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

	version, commit, date = "1.0.0", "none", "unknown"
	if got := buildVersion(); got != "1.0.0" {
		t.Errorf("buildVersion() = %q, want %q", got, "1.0.0")
	}

	version, commit, date = "1.0.0", "abcdef1234567", "2026-01-01"
	if got := buildVersion(); got != "1.0.0 (abcdef1, 2026-01-01)" {
		t.Errorf("buildVersion() = %q", got)
	}
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	handleError(&buf, fang.Styles{}, output.NewUserError("already printed"))
	if buf.Len() != 0 {
		t.Errorf("ExitError should not be printed again: %q", buf.String())
	}

	handleError(&buf, fang.Styles{}, errors.New("unknown flag: --nope"))
	if got := buf.String(); got != "Error: unknown flag: --nope\n" {
		t.Errorf("handleError() = %q", got)
	}
}
