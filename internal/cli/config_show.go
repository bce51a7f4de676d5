package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ariel-frischer/speckit/internal/config"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merged configuration and where each value comes from",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single effective configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path for a scope",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	configShowCmd.Flags().Bool("json", false, "Output in JSON format")
	configPathCmd.Flags().BoolP("project", "p", false, "Print the project config path instead of the global one")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	m, err := loadMerged()
	if err != nil {
		return err
	}

	if jsonOut {
		data, err := json.MarshalIndent(m.All(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}
		fmt.Fprintf(out, "%s\n", data)
		return nil
	}

	fmt.Fprintf(out, "%s\n", cBold("Configuration Sources"))
	printSourceLine(out, "Global", m.GlobalPath, m.GlobalLoaded)
	printSourceLine(out, "Project", m.ProjectPath, m.ProjectLoaded)
	fmt.Fprintf(out, "\n")

	for _, key := range m.Keys() {
		value, _ := m.Get(key)
		fmt.Fprintf(out, "  %s = %v %s\n", cCyan(key), value, cDim("("+string(m.Source(key))+")"))
	}
	return nil
}

func printSourceLine(out io.Writer, label, path string, loaded bool) {
	if loaded {
		fmt.Fprintf(out, "  %s %s: %s\n", cGreen("✓"), label, cDim(path))
	} else {
		fmt.Fprintf(out, "  %s %s: %s %s\n", cDim("-"), label, cDim(path), cDim("(missing)"))
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	m, err := loadMerged()
	if err != nil {
		return err
	}

	value, ok := m.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown configuration key: %s", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	project, _ := cmd.Flags().GetBool("project")
	out := cmd.OutOrStdout()

	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		fmt.Fprintln(out, config.ProjectConfigPath(cwd))
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	fmt.Fprintln(out, config.GlobalConfigPath(homeDir))
	return nil
}
