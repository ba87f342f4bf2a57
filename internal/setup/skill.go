package setup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/worklog/internal/output"
)

const (
	// SkillName is the directory name of the installed skill.
	SkillName = "work-logger"
	// SkillMarker identifies a skill file written by worklog.
	SkillMarker = "<!-- managed by worklog -->"
)

// SkillContent is the SKILL.md written by InstallSkill.
var SkillContent = `---
name: ` + SkillName + `
description: Record a summary of the current session in today's org-mode work journal. Use when asked to log, record, or journal the work done.
---
` + SkillMarker + `

# Work logger

1. Write a short org-mode summary of the work to a temporary draft file,
   for example ` + "`/tmp/worklog-draft.org`" + `. Use plain lines or "-" bullets.
   Do not start any line with "*": the journal's headings are managed for you.
2. Append it under the current project (the repository directory name):

       worklog append "$(date +%F)" <project> /tmp/worklog-draft.org --clean

3. The draft is deleted when the append succeeds. If the command exits
   non-zero, report its error message and keep the draft.

To review what is already logged today:

    worklog show "$(date +%F)" <project>
`

// ResolveSkillPath returns the SKILL.md path and its scope name.
// If project is true the path is under the working directory, otherwise
// under the home directory.
func ResolveSkillPath(project bool) (string, string, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", output.NewSystemErrorWithCause("failed to get working directory", err)
		}
		return skillPathIn(cwd), "project", nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", output.NewSystemErrorWithCause("failed to get home directory", err)
	}
	return skillPathIn(home), "global", nil
}

func skillPathIn(root string) string {
	return filepath.Join(root, ".claude", "skills", SkillName, "SKILL.md")
}

// IsSkillInstalled reports whether path holds a worklog-managed skill.
func IsSkillInstalled(path string) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), SkillMarker)
}

// InstallSkill writes SkillContent to path. An existing file without the
// marker is left alone unless force is set.
func InstallSkill(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force && !IsSkillInstalled(path) {
			return output.NewUserError(path + " exists and is not managed by worklog (use --force to replace it)")
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return output.NewSystemErrorWithCause("failed to stat skill file", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create skill directory", err)
	}
	if err := os.WriteFile(path, []byte(SkillContent), 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to write skill file", err)
	}
	return nil
}

// RemoveSkill deletes a worklog-managed skill file and its directory when
// that is left empty. A missing file is not an error.
func RemoveSkill(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if !IsSkillInstalled(path) {
		return output.NewUserError(path + " is not managed by worklog; not removing")
	}

	if err := os.Remove(path); err != nil {
		return output.NewSystemErrorWithCause("failed to remove skill file", err)
	}

	// Best effort: only succeeds when the directory is empty.
	_ = os.Remove(filepath.Dir(path))
	return nil
}
