// Package config resolves worklog settings from the config directory,
// env files, and the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the worklog configuration directory.
//
// Resolution:
//   - $WORKLOG_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/worklog if set (respects XDG on any platform)
//   - %AppData%/worklog on Windows
//   - ~/.config/worklog on macOS and Linux
func Dir() string {
	if dir := os.Getenv("WORKLOG_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "worklog")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "worklog")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "worklog")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
