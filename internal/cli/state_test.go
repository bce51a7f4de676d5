// Package cli tests the state command group.
// Related: internal/cli/state.go, internal/state/state.go
// Tags: cli, state, record

package cli

import (
	"strconv"
	"testing"

	"github.com/ariel-frischer/speckit/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStateShow_DefaultsWhenMissing(t *testing.T) {
	// Cannot run in parallel: changes HOME.
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd, buf := newBufferedCmd(runStateShow)
	cmd.Flags().Bool("json", false, "")
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "Tracked projects: 0")
	assert.Contains(t, out, "total_specs_created = 0")
	assert.Contains(t, out, "total_plans_created = 0")
}

func TestRunStateShow_JSONOutput(t *testing.T) {
	// Cannot run in parallel: changes HOME.
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd, buf := newBufferedCmd(runStateShow)
	cmd.Flags().Bool("json", false, "")
	_ = cmd.Flags().Set("json", "true")
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "\"global_stats\"")
	assert.Contains(t, buf.String(), "\"total_specs_created\"")
}

func TestRunStateRecord(t *testing.T) {
	// Cannot run in parallel: changes HOME.
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd, buf := newBufferedCmd(runStateRecord)
	cmd.Flags().Int("count", 1, "")
	cmd.SetArgs([]string{state.StatSpecsCreated})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), state.StatSpecsCreated+" is now 1")

	st, err := state.Load(home)
	require.NoError(t, err)
	assert.Equal(t, 1, st.GlobalStats[state.StatSpecsCreated])
}

func TestRunStateRecord_CustomCount(t *testing.T) {
	// Cannot run in parallel: changes HOME.
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd, buf := newBufferedCmd(runStateRecord)
	cmd.Flags().Int("count", 1, "")
	_ = cmd.Flags().Set("count", "3")
	cmd.SetArgs([]string{state.StatTasksGenerated})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "is now 3")
}

func TestRunStateRecord_Accumulates(t *testing.T) {
	// Cannot run in parallel: changes HOME.
	home := t.TempDir()
	t.Setenv("HOME", home)

	for i := 1; i <= 3; i++ {
		cmd, buf := newBufferedCmd(runStateRecord)
		cmd.Flags().Int("count", 1, "")
		cmd.SetArgs([]string{state.StatResearchItems})
		require.NoError(t, cmd.Execute())
		assert.Contains(t, buf.String(), "is now "+strconv.Itoa(i))
	}
}

func TestRunStateRecord_InvalidCount(t *testing.T) {
	// Cannot run in parallel: changes HOME.
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd, _ := newBufferedCmd(runStateRecord)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Flags().Int("count", 1, "")
	_ = cmd.Flags().Set("count", "0")
	cmd.SetArgs([]string{state.StatSpecsCreated})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --count")
}
