package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
// (spec.md §6 notes the CLI is a peripheral collaborator, not part of the
// core; grounded on cmd/recast/cmd/root.go).
var RootCmd = &cobra.Command{
	Use:   "ng-trajectory",
	Short: "plan a racing trajectory with the Matryoshka transformation",
	Long: `ng-trajectory optimises a racing line on a closed track:
	- reads a build settings file (YAML),
	- builds the per-segment Matryoshka transformation,
	- drives a budgeted, parallel derivative-free search over it,
	- reports the best trajectory found.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
