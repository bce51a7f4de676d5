package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/speckit/internal/config"
	"github.com/ariel-frischer/speckit/internal/initialize"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize spec-kit configuration files",
	Long: `Initialize the on-disk spec-kit configuration.

This command:
  1. Creates ~/.config/opencode/spec-kit/ with default config.json
  2. Creates state.json alongside it
  3. With --project, additionally creates .opencode/spec-kit/config.json
     in the current working directory

Every file is written only if absent; existing files are left untouched,
including ones you have edited by hand. Use --force to overwrite the
config file for the chosen scope with defaults (the state file is never
overwritten).`,
	Example: `  # Ensure global config and state exist
  speckit init

  # Additionally provision the current project
  speckit init --project

  # Reset the global config to defaults
  speckit init --force`,
	Args: cobra.ArbitraryArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("project", "p", false, "Also create project-level config in the current directory")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing config with defaults (state is never overwritten)")
}

func runInit(cmd *cobra.Command, args []string) error {
	project, _ := cmd.Flags().GetBool("project")
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	configPath, err := ensureGlobalConfigStep(cmd, out, homeDir, force && !project)
	if err != nil {
		return fmt.Errorf("initializing global config: %w", err)
	}

	statePath, stateCreated, err := initialize.EnsureGlobalState(homeDir)
	if err != nil {
		return fmt.Errorf("initializing global state: %w", err)
	}
	printStatus(out, "Global state", statePath, stateCreated)

	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		projPath, err := ensureProjectConfigStep(cmd, out, cwd, force)
		if err != nil {
			return fmt.Errorf("initializing project config: %w", err)
		}
		printProjectSummary(out, cwd, projPath)
		return nil
	}

	printGlobalSummary(out, configPath, statePath)
	return nil
}

// ensureGlobalConfigStep creates or (with force) overwrites the global
// config and prints the status line.
func ensureGlobalConfigStep(cmd *cobra.Command, out io.Writer, homeDir string, force bool) (string, error) {
	path := config.GlobalConfigPath(homeDir)
	if force && config.FileExists(path) && confirmOverwrite(cmd, path) {
		overwritten, err := initialize.OverwriteGlobalConfig(homeDir)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(out, "%s %s: overwritten at %s\n", cGreen("✓"), cBold("Global config"), cDim(overwritten))
		return overwritten, nil
	}

	path, created, err := initialize.EnsureGlobalConfig(homeDir)
	if err != nil {
		return "", err
	}
	printStatus(out, "Global config", path, created)
	return path, nil
}

// ensureProjectConfigStep creates or (with force) overwrites the project
// config and prints the status line.
func ensureProjectConfigStep(cmd *cobra.Command, out io.Writer, projectDir string, force bool) (string, error) {
	path := config.ProjectConfigPath(projectDir)
	if force && config.FileExists(path) && confirmOverwrite(cmd, path) {
		overwritten, err := initialize.OverwriteProjectConfig(projectDir)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(out, "%s %s: overwritten at %s\n", cGreen("✓"), cBold("Project config"), cDim(overwritten))
		return overwritten, nil
	}

	path, created, err := initialize.EnsureProjectConfig(projectDir)
	if err != nil {
		return "", err
	}
	printStatus(out, "Project config", path, created)
	return path, nil
}

func printStatus(out io.Writer, label, path string, created bool) {
	if created {
		fmt.Fprintf(out, "%s %s: created at %s\n", cGreen("✓"), cBold(label), cDim(path))
	} else {
		fmt.Fprintf(out, "%s %s: already exists at %s\n", cGreen("✓"), cBold(label), cDim(path))
	}
}

func printGlobalSummary(out io.Writer, configPath, statePath string) {
	fmt.Fprintf(out, "\n%s %s\n\n", cGreen("✓"), cBold("Spec-kit global setup complete"))
	fmt.Fprintf(out, "  Config: %s\n", configPath)
	fmt.Fprintf(out, "  State:  %s\n", statePath)
	fmt.Fprintf(out, "\nRun %s inside a project to add project-level configuration.\n", cCyan("'speckit init --project'"))
}

func printProjectSummary(out io.Writer, projectDir, configPath string) {
	fmt.Fprintf(out, "\n%s %s\n\n", cGreen("✓"), cBold("Spec-kit project setup complete"))
	fmt.Fprintf(out, "  Project: %s\n", projectDir)
	fmt.Fprintf(out, "  Config:  %s\n", configPath)
	fmt.Fprintf(out, "\nProject settings override global settings; run %s to inspect the merged view.\n", cCyan("'speckit config show'"))
}

// confirmOverwrite asks before a forced overwrite. In non-interactive
// environments the prompt is skipped and the overwrite proceeds.
func confirmOverwrite(cmd *cobra.Command, path string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Config exists at %s\n", cYellow("⚠"), path)
	return promptYesNo(cmd, "Overwrite with defaults?")
}

func promptYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}
