package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/speckit/internal/config"
	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Long: `Update a single configuration value in the global or project config file.

The file is created with defaults first if it does not exist, and its
updated_at timestamp is refreshed. Global keys:

  theme, auto_save, workspace_settings.default_template,
  workspace_settings.max_concurrent_tasks, workspace_settings.auto_commit

Project keys (with --project):

  spec_kit_enabled, default_template, auto_commit, git_integration,
  research_enabled, custom_settings.max_tasks_per_spec,
  custom_settings.default_research_depth,
  custom_settings.auto_save_interval, custom_settings.backup_enabled`,
	Example: `  speckit config set theme dark
  speckit config set workspace_settings.max_concurrent_tasks 8
  speckit config set research_enabled false --project`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().BoolP("project", "p", false, "Update the project config in the current directory")
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	project, _ := cmd.Flags().GetBool("project")
	out := cmd.OutOrStdout()
	key, value := args[0], args[1]

	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		if err := config.SetProject(cwd, key, value); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Set %s = %s %s\n", cGreen("✓"), cBold(key), value, cDim("(project)"))
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	if err := config.SetGlobal(homeDir, key, value); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Set %s = %s %s\n", cGreen("✓"), cBold(key), value, cDim("(global)"))
	return nil
}
