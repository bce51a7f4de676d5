package config

import (
	"os"
	"path/filepath"
)

// GlobalDir returns the global spec-kit configuration directory under the
// given home directory: <home>/.config/opencode/spec-kit.
func GlobalDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", "opencode", "spec-kit")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath(homeDir string) string {
	return filepath.Join(GlobalDir(homeDir), "config.json")
}

// GlobalStatePath returns the path to the global state file.
func GlobalStatePath(homeDir string) string {
	return filepath.Join(GlobalDir(homeDir), "state.json")
}

// ProjectDir returns the project-level spec-kit directory:
// <project>/.opencode/spec-kit.
func ProjectDir(projectDir string) string {
	return filepath.Join(projectDir, ".opencode", "spec-kit")
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(ProjectDir(projectDir), "config.json")
}

// FileExists returns true if the file exists and is stat-able.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
