// Package config tests per-key configuration updates.
// Related: internal/config/set.go
// Tags: config, set

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGlobal_CreatesFileWhenAbsent(t *testing.T) {
	t.Parallel()

	home := t.TempDir()

	require.NoError(t, SetGlobal(home, "theme", "dark"))

	cfg, err := ReadGlobalConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	// The rest of the document keeps its defaults.
	assert.Len(t, cfg.KeyboardShortcuts, 6)
	assert.Equal(t, PlaceholderTimestamp, cfg.CreatedAt)
	assert.NotEqual(t, PlaceholderTimestamp, cfg.UpdatedAt)
}

func TestSetGlobal_RefreshesUpdatedAtOnly(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	require.NoError(t, SetGlobal(home, "auto_save", "false"))

	cfg, err := ReadGlobalConfig(home)
	require.NoError(t, err)
	assert.False(t, cfg.AutoSave)
	assert.Equal(t, PlaceholderTimestamp, cfg.CreatedAt)

	updated, err := time.Parse(TimestampFormat, cfg.UpdatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), updated, time.Minute)
}

func TestSetGlobal_Keys(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, cfg *GlobalConfig)
	}{
		"theme": {
			key: "theme", value: "dark",
			check: func(t *testing.T, cfg *GlobalConfig) { assert.Equal(t, "dark", cfg.Theme) },
		},
		"workspace default template": {
			key: "workspace_settings.default_template", value: "minimal",
			check: func(t *testing.T, cfg *GlobalConfig) {
				assert.Equal(t, "minimal", cfg.WorkspaceSettings.DefaultTemplate)
			},
		},
		"workspace max concurrent tasks": {
			key: "workspace_settings.max_concurrent_tasks", value: "8",
			check: func(t *testing.T, cfg *GlobalConfig) {
				assert.Equal(t, 8, cfg.WorkspaceSettings.MaxConcurrentTasks)
			},
		},
		"workspace auto commit": {
			key: "workspace_settings.auto_commit", value: "true",
			check: func(t *testing.T, cfg *GlobalConfig) { assert.True(t, cfg.WorkspaceSettings.AutoCommit) },
		},
		"unknown key": {
			key: "keyboard_shortcuts.create_spec", value: "ctrl+x", wantErr: true,
		},
		"invalid bool": {
			key: "auto_save", value: "maybe", wantErr: true,
		},
		"invalid int": {
			key: "workspace_settings.max_concurrent_tasks", value: "-2", wantErr: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			home := t.TempDir()
			err := SetGlobal(home, tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg, err := ReadGlobalConfig(home)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestSetProject_Keys(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, cfg *ProjectConfig)
	}{
		"spec kit enabled": {
			key: "spec_kit_enabled", value: "false",
			check: func(t *testing.T, cfg *ProjectConfig) { assert.False(t, cfg.SpecKitEnabled) },
		},
		"default template": {
			key: "default_template", value: "research",
			check: func(t *testing.T, cfg *ProjectConfig) { assert.Equal(t, "research", cfg.DefaultTemplate) },
		},
		"git integration": {
			key: "git_integration", value: "false",
			check: func(t *testing.T, cfg *ProjectConfig) { assert.False(t, cfg.GitIntegration) },
		},
		"max tasks per spec": {
			key: "custom_settings.max_tasks_per_spec", value: "25",
			check: func(t *testing.T, cfg *ProjectConfig) { assert.Equal(t, 25, cfg.CustomSettings.MaxTasksPerSpec) },
		},
		"backup enabled": {
			key: "custom_settings.backup_enabled", value: "false",
			check: func(t *testing.T, cfg *ProjectConfig) { assert.False(t, cfg.CustomSettings.BackupEnabled) },
		},
		"project path not settable": {
			key: "project_path", value: "/elsewhere", wantErr: true,
		},
		"version not settable": {
			key: "version", value: "2.0.0", wantErr: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			project := t.TempDir()
			err := SetProject(project, tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg, err := ReadProjectConfig(project)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestSetProject_PreservesExistingDocument(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	require.NoError(t, SetProject(project, "default_template", "research"))

	before, err := ReadProjectConfig(project)
	require.NoError(t, err)

	require.NoError(t, SetProject(project, "auto_commit", "false"))

	after, err := ReadProjectConfig(project)
	require.NoError(t, err)
	assert.Equal(t, "research", after.DefaultTemplate)
	assert.False(t, after.AutoCommit)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}
