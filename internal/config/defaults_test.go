// Package config tests the fixed default documents.
// Related: internal/config/defaults.go
// Tags: config, defaults

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGlobalConfig_FixedContent(t *testing.T) {
	t.Parallel()

	cfg := DefaultGlobalConfig()

	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "auto", cfg.Theme)
	assert.True(t, cfg.AutoSave)

	// Exactly six shortcuts, one per spec-kit command.
	assert.Len(t, cfg.KeyboardShortcuts, 6)
	for _, command := range []string{
		"create_spec", "generate_plan", "generate_tasks",
		"run_research", "analyze_codebase", "migrate_spec",
	} {
		assert.Contains(t, cfg.KeyboardShortcuts, command)
	}

	// Exactly three extension flags.
	assert.Len(t, cfg.Extensions, 3)
	assert.True(t, cfg.Extensions["spec_kit"])
	assert.True(t, cfg.Extensions["research_tools"])
	assert.False(t, cfg.Extensions["migration_assistant"])

	assert.Equal(t, "standard", cfg.WorkspaceSettings.DefaultTemplate)
	assert.Equal(t, 5, cfg.WorkspaceSettings.MaxConcurrentTasks)
	assert.False(t, cfg.WorkspaceSettings.AutoCommit)
}

func TestDefaultGlobalConfig_PlaceholderTimestamps(t *testing.T) {
	t.Parallel()

	cfg := DefaultGlobalConfig()

	assert.Equal(t, PlaceholderTimestamp, cfg.CreatedAt)
	assert.Equal(t, PlaceholderTimestamp, cfg.UpdatedAt)
}

func TestDefaultProjectConfig(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	cfg := DefaultProjectConfig("/work/demo", now)

	assert.Equal(t, "/work/demo", cfg.ProjectPath)
	assert.True(t, cfg.SpecKitEnabled)
	assert.Equal(t, "standard", cfg.DefaultTemplate)
	assert.True(t, cfg.AutoCommit)
	assert.True(t, cfg.GitIntegration)
	assert.True(t, cfg.ResearchEnabled)
	assert.Equal(t, 50, cfg.CustomSettings.MaxTasksPerSpec)
	assert.Equal(t, 3, cfg.CustomSettings.DefaultResearchDepth)
	assert.Equal(t, 300, cfg.CustomSettings.AutoSaveInterval)
	assert.True(t, cfg.CustomSettings.BackupEnabled)

	// Real clock, not the placeholder, rendered in the wire format.
	assert.Equal(t, "2025-03-14T09:26:53Z", cfg.CreatedAt)
	assert.Equal(t, cfg.CreatedAt, cfg.UpdatedAt)
}

func TestEncodeDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	data, err := EncodeDocument(DefaultGlobalConfig())
	require.NoError(t, err)

	// Indented JSON with a trailing newline.
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.Contains(t, string(data), "  \"version\": \"1.0.0\"")

	var decoded GlobalConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *DefaultGlobalConfig(), decoded)
}
