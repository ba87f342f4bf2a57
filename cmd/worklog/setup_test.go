package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/worklog/internal/setup"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return filepath.Join(home, ".claude", "skills", setup.SkillName, "SKILL.md")
}

func TestSetupClaude_InstallCheckRemove(t *testing.T) {
	skillPath := setupHome(t)

	stdout, stderr, err := executeRoot(t, "setup", "claude")
	if err != nil {
		t.Fatalf("install error = %v (stderr: %s)", err, stderr)
	}
	if !strings.Contains(stdout, "Skill installed (global)") {
		t.Errorf("stdout = %q", stdout)
	}
	if !setup.IsSkillInstalled(skillPath) {
		t.Fatal("skill should be installed")
	}

	stdout, _, err = executeRoot(t, "setup", "claude", "--check", "--json")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	var status map[string]any
	if err := json.Unmarshal([]byte(stdout), &status); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if status["installed"] != true || status["location"] != skillPath {
		t.Errorf("status = %v", status)
	}

	if _, _, err := executeRoot(t, "setup", "claude", "--remove"); err != nil {
		t.Fatalf("remove error = %v", err)
	}
	if _, err := os.Stat(skillPath); !os.IsNotExist(err) {
		t.Errorf("skill file should be removed (stat err = %v)", err)
	}
}

func TestSetupClaude_DryRun(t *testing.T) {
	skillPath := setupHome(t)

	stdout, _, err := executeRoot(t, "setup", "claude", "--dry-run")
	if err != nil {
		t.Fatalf("dry run error = %v", err)
	}
	if !strings.Contains(stdout, "Would be installed: "+skillPath) {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := os.Stat(skillPath); !os.IsNotExist(err) {
		t.Error("dry run should not write the skill")
	}
}
