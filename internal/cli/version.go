package cli

import (
	"fmt"

	"github.com/ariel-frischer/speckit/internal/build"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "speckit %s\n", build.Version)
		fmt.Fprintf(out, "  commit: %s\n", build.Commit)
		fmt.Fprintf(out, "  built:  %s\n", build.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
