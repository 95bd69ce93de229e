package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wentasah/ng-trajectory/internal/config"
)

// initConfigCmd represents the init-config command (grounded on
// cmd/recast/cmd/config.go's "config FILE" command).
var initConfigCmd = &cobra.Command{
	Use:   "init-config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default values.

If FILE is not provided, 'ng-trajectory.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "ng-trajectory.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			if !confirm(fmt.Sprintf("file %q already exists, overwrite? [y/N]", path)) {
				fmt.Println("aborted by user")
				return
			}
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Println("error,", err)
			os.Exit(-1)
		}
		fmt.Printf("build settings written to %q\n", path)
	},
}

func init() {
	RootCmd.AddCommand(initConfigCmd)
}
