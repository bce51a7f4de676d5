package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// GlobalConfig is the user-wide settings document stored at
// ~/.config/opencode/spec-kit/config.json. It is written once by the
// initializer and only modified through per-key setters.
type GlobalConfig struct {
	Version           string            `json:"version"`
	Theme             string            `json:"theme"`
	AutoSave          bool              `json:"auto_save"`
	KeyboardShortcuts map[string]string `json:"keyboard_shortcuts"`
	Extensions        map[string]bool   `json:"extensions"`
	WorkspaceSettings WorkspaceSettings `json:"workspace_settings"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}

// WorkspaceSettings holds workspace-level defaults within the global config.
type WorkspaceSettings struct {
	DefaultTemplate    string `json:"default_template"`
	MaxConcurrentTasks int    `json:"max_concurrent_tasks"`
	AutoCommit         bool   `json:"auto_commit"`
}

// ProjectConfig is the per-project settings document stored at
// <project>/.opencode/spec-kit/config.json. Project values override global
// values in the merged view.
type ProjectConfig struct {
	ProjectPath     string         `json:"project_path"`
	SpecKitEnabled  bool           `json:"spec_kit_enabled"`
	DefaultTemplate string         `json:"default_template"`
	AutoCommit      bool           `json:"auto_commit"`
	GitIntegration  bool           `json:"git_integration"`
	ResearchEnabled bool           `json:"research_enabled"`
	CustomSettings  CustomSettings `json:"custom_settings"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

// CustomSettings holds tunable per-project limits.
type CustomSettings struct {
	MaxTasksPerSpec      int  `json:"max_tasks_per_spec"`
	DefaultResearchDepth int  `json:"default_research_depth"`
	AutoSaveInterval     int  `json:"auto_save_interval"`
	BackupEnabled        bool `json:"backup_enabled"`
}

// EncodeDocument renders a configuration document as indented UTF-8 JSON
// with a trailing newline, the on-disk format for all spec-kit files.
func EncodeDocument(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return append(data, '\n'), nil
}

// ReadGlobalConfig loads and parses the global config file.
func ReadGlobalConfig(homeDir string) (*GlobalConfig, error) {
	path := GlobalConfigPath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading global config: %w", err)
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config %s: %w", path, err)
	}
	return &cfg, nil
}

// ReadProjectConfig loads and parses the project config file.
func ReadProjectConfig(projectDir string) (*ProjectConfig, error) {
	path := ProjectConfigPath(projectDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}
	var cfg ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing project config %s: %w", path, err)
	}
	return &cfg, nil
}
