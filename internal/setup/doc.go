// Package setup installs and removes the agent skill that teaches a coding
// agent to record its work with worklog.
//
// The skill file is owned by worklog: it carries a marker line, and files
// without the marker are never overwritten or removed.
//
//	path, scope, err := setup.ResolveSkillPath(false)
//	installed := setup.IsSkillInstalled(path)
//	err := setup.InstallSkill(path, false)
//	err := setup.RemoveSkill(path)
package setup
