package cli

import (
	"github.com/ariel-frischer/speckit/internal/build"
	"github.com/ariel-frischer/speckit/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Color helper functions for command output
var (
	cGreen  = color.New(color.FgGreen).SprintFunc()
	cYellow = color.New(color.FgYellow).SprintFunc()
	cCyan   = color.New(color.FgCyan).SprintFunc()
	cDim    = color.New(color.Faint).SprintFunc()
	cBold   = color.New(color.Bold).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:   "speckit",
	Short: "Spec-kit configuration manager for opencode",
	Long: `speckit provisions and manages on-disk configuration for the opencode
spec-kit integration.

Running speckit with no subcommand initializes the global configuration:
it creates ~/.config/opencode/spec-kit with default config.json and
state.json files. Existing files are never modified.

Configuration is resolved with the following priority (highest to lowest):
  1. Environment variables (SPECKIT_*)
  2. Project config (.opencode/spec-kit/config.json)
  3. Global config (~/.config/opencode/spec-kit/config.json)
  4. Built-in defaults`,
	Example: `  # Ensure global config and state files exist
  speckit

  # Also create project-level config in the current directory
  speckit init --project

  # Inspect the merged configuration
  speckit config show`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runInit,
	SilenceUsage:  true,
	SilenceErrors: false,
	Version:       build.Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		logging.SetDebug(debug)
	}

	// The bare root invocation accepts the same flags as `speckit init`
	// so that `speckit --project` behaves identically.
	rootCmd.Flags().BoolP("project", "p", false, "Also create project-level config in the current directory")
	rootCmd.Flags().BoolP("force", "f", false, "Overwrite existing config with defaults (state is never overwritten)")
}
