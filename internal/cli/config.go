package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/speckit/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage spec-kit configuration",
	Long: `Manage spec-kit configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (SPECKIT_*)
  2. Project config (.opencode/spec-kit/config.json)
  3. Global config (~/.config/opencode/spec-kit/config.json)
  4. Built-in defaults`,
	Example: `  # Show the merged configuration with sources
  speckit config show

  # Read a single effective value
  speckit config get theme

  # Update a global setting
  speckit config set theme dark

  # Update a project setting
  speckit config set auto_commit false --project`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// loadMerged builds the merged view from the real home directory and the
// current working directory.
func loadMerged() (*config.Merged, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}
	return config.Load(config.LoadOptions{HomeDir: homeDir, ProjectDir: cwd})
}
