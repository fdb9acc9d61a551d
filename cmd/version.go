package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags; "dev" covers local builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the radarctl version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("radarctl", version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
