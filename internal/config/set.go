package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SetGlobal updates a single settable key in the global config file,
// creating the file with defaults first if it does not exist. The
// document's updated_at is refreshed; created_at is preserved.
func SetGlobal(homeDir, key, value string) error {
	cfg, err := ReadGlobalConfig(homeDir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg = DefaultGlobalConfig()
	}

	switch key {
	case "theme":
		cfg.Theme = value
	case "auto_save":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q", key, value)
		}
		cfg.AutoSave = b
	case "workspace_settings.default_template":
		cfg.WorkspaceSettings.DefaultTemplate = value
	case "workspace_settings.max_concurrent_tasks":
		n, err := parsePositiveInt(key, value)
		if err != nil {
			return err
		}
		cfg.WorkspaceSettings.MaxConcurrentTasks = n
	case "workspace_settings.auto_commit":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q", key, value)
		}
		cfg.WorkspaceSettings.AutoCommit = b
	default:
		return fmt.Errorf("unknown global configuration key: %s", key)
	}

	cfg.UpdatedAt = Now()
	return writeDocument(GlobalConfigPath(homeDir), cfg)
}

// SetProject updates a single settable key in the project config file,
// creating the file with defaults first if it does not exist.
func SetProject(projectDir, key, value string) error {
	cfg, err := ReadProjectConfig(projectDir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		abs, absErr := filepath.Abs(projectDir)
		if absErr != nil {
			return fmt.Errorf("resolving project directory: %w", absErr)
		}
		cfg = DefaultProjectConfig(abs, time.Now())
	}

	switch key {
	case "spec_kit_enabled":
		return setProjectBool(projectDir, cfg, key, value, &cfg.SpecKitEnabled)
	case "default_template":
		cfg.DefaultTemplate = value
	case "auto_commit":
		return setProjectBool(projectDir, cfg, key, value, &cfg.AutoCommit)
	case "git_integration":
		return setProjectBool(projectDir, cfg, key, value, &cfg.GitIntegration)
	case "research_enabled":
		return setProjectBool(projectDir, cfg, key, value, &cfg.ResearchEnabled)
	case "custom_settings.max_tasks_per_spec":
		n, err := parsePositiveInt(key, value)
		if err != nil {
			return err
		}
		cfg.CustomSettings.MaxTasksPerSpec = n
	case "custom_settings.default_research_depth":
		n, err := parsePositiveInt(key, value)
		if err != nil {
			return err
		}
		cfg.CustomSettings.DefaultResearchDepth = n
	case "custom_settings.auto_save_interval":
		n, err := parsePositiveInt(key, value)
		if err != nil {
			return err
		}
		cfg.CustomSettings.AutoSaveInterval = n
	case "custom_settings.backup_enabled":
		return setProjectBool(projectDir, cfg, key, value, &cfg.CustomSettings.BackupEnabled)
	default:
		return fmt.Errorf("unknown project configuration key: %s", key)
	}

	cfg.UpdatedAt = Now()
	return writeDocument(ProjectConfigPath(projectDir), cfg)
}

func setProjectBool(projectDir string, cfg *ProjectConfig, key, value string, field *bool) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %q", key, value)
	}
	*field = b
	cfg.UpdatedAt = Now()
	return writeDocument(ProjectConfigPath(projectDir), cfg)
}

func parsePositiveInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid value for %s: %q (want a positive integer)", key, value)
	}
	return n, nil
}

// writeDocument renders and writes a document, creating parent directories.
func writeDocument(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := EncodeDocument(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
