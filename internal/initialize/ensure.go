// Package initialize provisions the on-disk spec-kit configuration state.
//
// All three operations are idempotent: directories are created if missing
// and each file is written only when absent. An existing file is never
// touched, even if it was edited by hand. There is no locking; concurrent
// invocations can race on the existence check, which is accepted for an
// interactive single-user tool.
package initialize

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/speckit/internal/config"
	"github.com/ariel-frischer/speckit/internal/logging"
	"github.com/ariel-frischer/speckit/internal/state"
)

// EnsureGlobalConfig makes sure <homeDir>/.config/opencode/spec-kit exists
// and contains a config.json, writing the fixed default document if the
// file is absent. Returns the config path and whether a new file was
// written.
func EnsureGlobalConfig(homeDir string) (string, bool, error) {
	path := config.GlobalConfigPath(homeDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("creating global config directory: %w", err)
	}

	if config.FileExists(path) {
		logging.Logger.Debug("global config present, leaving untouched", "path", path)
		return path, false, nil
	}

	if err := writeDocument(path, config.DefaultGlobalConfig()); err != nil {
		return "", false, err
	}
	logging.Logger.Debug("wrote default global config", "path", path)
	return path, true, nil
}

// EnsureGlobalState makes sure state.json exists alongside the global
// config, writing the default state document if absent. Independent of the
// config file's existence.
func EnsureGlobalState(homeDir string) (string, bool, error) {
	path := config.GlobalStatePath(homeDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("creating global config directory: %w", err)
	}

	if config.FileExists(path) {
		logging.Logger.Debug("global state present, leaving untouched", "path", path)
		return path, false, nil
	}

	if err := writeDocument(path, state.Default()); err != nil {
		return "", false, err
	}
	logging.Logger.Debug("wrote default global state", "path", path)
	return path, true, nil
}

// EnsureProjectConfig makes sure <projectDir>/.opencode/spec-kit exists and
// contains a config.json. Unlike the global files, a newly written project
// config records the actual creation time and the resolved absolute
// project path.
func EnsureProjectConfig(projectDir string) (string, bool, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", false, fmt.Errorf("resolving project directory: %w", err)
	}

	path := config.ProjectConfigPath(abs)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("creating project config directory: %w", err)
	}

	if config.FileExists(path) {
		logging.Logger.Debug("project config present, leaving untouched", "path", path)
		return path, false, nil
	}

	if err := writeDocument(path, config.DefaultProjectConfig(abs, time.Now())); err != nil {
		return "", false, err
	}
	logging.Logger.Debug("wrote default project config", "path", path)
	return path, true, nil
}

// OverwriteGlobalConfig unconditionally writes the default global config,
// used by `init --force`. The state file is never overwritten.
func OverwriteGlobalConfig(homeDir string) (string, error) {
	path := config.GlobalConfigPath(homeDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating global config directory: %w", err)
	}
	if err := writeDocument(path, config.DefaultGlobalConfig()); err != nil {
		return "", err
	}
	return path, nil
}

// OverwriteProjectConfig unconditionally writes the default project config,
// used by `init --project --force`.
func OverwriteProjectConfig(projectDir string) (string, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}
	path := config.ProjectConfigPath(abs)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating project config directory: %w", err)
	}
	if err := writeDocument(path, config.DefaultProjectConfig(abs, time.Now())); err != nil {
		return "", err
	}
	return path, nil
}

func writeDocument(path string, v any) error {
	data, err := config.EncodeDocument(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
