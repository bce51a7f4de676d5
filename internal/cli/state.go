package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ariel-frischer/speckit/internal/state"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect and update spec-kit usage state",
	Long: `Inspect and update the spec-kit state file
(~/.config/opencode/spec-kit/state.json).

The state file tracks per-project entries and global usage counters. The
initializer writes it once with zeroed counters; only the state commands
modify it afterwards.`,
	Example: `  # Show counters and tracked projects
  speckit state show

  # Record a created spec
  speckit state record total_specs_created`,
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the state document",
	RunE:  runStateShow,
}

var stateRecordCmd = &cobra.Command{
	Use:   "record <stat>",
	Short: "Increment a global stat counter",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateRecord,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateRecordCmd)
	stateShowCmd.Flags().Bool("json", false, "Output in JSON format")
	stateRecordCmd.Flags().Int("count", 1, "Amount to add to the counter")
}

func runStateShow(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	st, err := state.Load(homeDir)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	if jsonOut {
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding state: %w", err)
		}
		fmt.Fprintf(out, "%s\n", data)
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", cBold("Version:"), st.Version)
	fmt.Fprintf(out, "%s %s\n", cBold("Last updated:"), st.LastUpdated)
	fmt.Fprintf(out, "%s %d\n\n", cBold("Tracked projects:"), len(st.Projects))

	names := make([]string, 0, len(st.GlobalStats))
	for name := range st.GlobalStats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s = %d\n", cCyan(name), st.GlobalStats[name])
	}
	return nil
}

func runStateRecord(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	out := cmd.OutOrStdout()

	if count <= 0 {
		return fmt.Errorf("invalid --count %d (want a positive integer)", count)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	total, err := state.IncrementStat(homeDir, args[0], count)
	if err != nil {
		return fmt.Errorf("recording stat: %w", err)
	}

	fmt.Fprintf(out, "%s %s is now %d\n", cGreen("✓"), cBold(args[0]), total)
	return nil
}
