package config

import "time"

// ConfigVersion is the schema version written into new config and state files.
const ConfigVersion = "1.0.0"

// PlaceholderTimestamp is the fixed creation timestamp written into global
// files. The initializer is deterministic: global documents never embed the
// real clock, so re-running it in a clean home always produces identical
// bytes. Only project configs capture the actual run time.
const PlaceholderTimestamp = "2024-01-01T00:00:00"

// TimestampFormat is the layout for real timestamps (project config
// creation, setter updates, state bookkeeping).
const TimestampFormat = "2006-01-02T15:04:05Z"

// Now returns the current UTC time rendered in TimestampFormat.
func Now() string {
	return time.Now().UTC().Format(TimestampFormat)
}

// DefaultShortcuts returns the fixed keyboard shortcut map, one entry per
// spec-kit command.
func DefaultShortcuts() map[string]string {
	return map[string]string{
		"create_spec":      "ctrl+shift+s",
		"generate_plan":    "ctrl+shift+p",
		"generate_tasks":   "ctrl+shift+t",
		"run_research":     "ctrl+shift+r",
		"analyze_codebase": "ctrl+shift+a",
		"migrate_spec":     "ctrl+shift+m",
	}
}

// DefaultExtensions returns the fixed extension flag map.
func DefaultExtensions() map[string]bool {
	return map[string]bool{
		"spec_kit":            true,
		"research_tools":      true,
		"migration_assistant": false,
	}
}

// DefaultGlobalConfig returns the document written when no global config
// exists. Both timestamps are the fixed placeholder.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Version:           ConfigVersion,
		Theme:             "auto",
		AutoSave:          true,
		KeyboardShortcuts: DefaultShortcuts(),
		Extensions:        DefaultExtensions(),
		WorkspaceSettings: WorkspaceSettings{
			DefaultTemplate:    "standard",
			MaxConcurrentTasks: 5,
			AutoCommit:         false,
		},
		CreatedAt: PlaceholderTimestamp,
		UpdatedAt: PlaceholderTimestamp,
	}
}

// DefaultProjectConfig returns the document written when no project config
// exists. Both timestamps are set to now, unlike the global files.
func DefaultProjectConfig(projectPath string, now time.Time) *ProjectConfig {
	stamp := now.UTC().Format(TimestampFormat)
	return &ProjectConfig{
		ProjectPath:     projectPath,
		SpecKitEnabled:  true,
		DefaultTemplate: "standard",
		AutoCommit:      true,
		GitIntegration:  true,
		ResearchEnabled: true,
		CustomSettings: CustomSettings{
			MaxTasksPerSpec:      50,
			DefaultResearchDepth: 3,
			AutoSaveInterval:     300,
			BackupEnabled:        true,
		},
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}

// GetDefaults returns the built-in values for the merged configuration
// view, keyed with dotted paths. These sit at the lowest layer; global and
// project files, then SPECKIT_* environment variables, override them.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"version":   ConfigVersion,
		"theme":     "auto",
		"auto_save": true,
		"workspace_settings.default_template":     "standard",
		"workspace_settings.max_concurrent_tasks": 5,
		"workspace_settings.auto_commit":          false,
		"spec_kit_enabled":                        true,
		"default_template":                        "standard",
		"auto_commit":                             true,
		"git_integration":                         true,
		"research_enabled":                        true,
		"custom_settings.max_tasks_per_spec":      50,
		"custom_settings.default_research_depth":  3,
		"custom_settings.auto_save_interval":      300,
		"custom_settings.backup_enabled":          true,
	}
}
