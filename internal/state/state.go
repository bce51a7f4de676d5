// Package state manages the global spec-kit state document at
// ~/.config/opencode/spec-kit/state.json. The initializer writes the
// default document once; the bookkeeping operations here (stat counters,
// per-project entries) are the only things that mutate it afterwards.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ariel-frischer/speckit/internal/config"
)

// Stat counter names tracked in global_stats.
const (
	StatSpecsCreated   = "total_specs_created"
	StatPlansCreated   = "total_plans_created"
	StatTasksGenerated = "total_tasks_generated"
	StatResearchItems  = "total_research_items"
)

// State is the persisted state document.
type State struct {
	Version     string                    `json:"version"`
	LastUpdated string                    `json:"last_updated"`
	Projects    map[string]map[string]any `json:"projects"`
	GlobalStats map[string]int            `json:"global_stats"`
}

// Default returns a fresh state document with zeroed counters and the
// fixed placeholder timestamp, matching what the initializer writes.
func Default() *State {
	return &State{
		Version:     config.ConfigVersion,
		LastUpdated: config.PlaceholderTimestamp,
		Projects:    map[string]map[string]any{},
		GlobalStats: map[string]int{
			StatSpecsCreated:   0,
			StatPlansCreated:   0,
			StatTasksGenerated: 0,
			StatResearchItems:  0,
		},
	}
}

// Load reads state.json from the given home directory. A missing file
// yields the default document without writing anything.
func Load(homeDir string) (*State, error) {
	path := config.GlobalStatePath(homeDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", path, err)
	}
	if st.Projects == nil {
		st.Projects = map[string]map[string]any{}
	}
	if st.GlobalStats == nil {
		st.GlobalStats = map[string]int{}
	}
	return &st, nil
}

// Save writes the state document, creating the directory if needed.
func Save(homeDir string, st *State) error {
	if err := os.MkdirAll(config.GlobalDir(homeDir), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	data, err := config.EncodeDocument(st)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}
	path := config.GlobalStatePath(homeDir)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state file %s: %w", path, err)
	}
	return nil
}

// IncrementStat bumps a global stat counter by delta, creating the counter
// at zero if it is unknown, and refreshes last_updated. Returns the new
// counter value.
func IncrementStat(homeDir, name string, delta int) (int, error) {
	st, err := Load(homeDir)
	if err != nil {
		return 0, err
	}

	st.GlobalStats[name] += delta
	st.LastUpdated = config.Now()

	if err := Save(homeDir, st); err != nil {
		return 0, err
	}
	return st.GlobalStats[name], nil
}

// SetProjectValue upserts a key in the per-project state map and refreshes
// last_updated.
func SetProjectValue(homeDir, projectPath, key string, value any) error {
	st, err := Load(homeDir)
	if err != nil {
		return err
	}

	if st.Projects[projectPath] == nil {
		st.Projects[projectPath] = map[string]any{}
	}
	st.Projects[projectPath][key] = value
	st.LastUpdated = config.Now()

	return Save(homeDir, st)
}
