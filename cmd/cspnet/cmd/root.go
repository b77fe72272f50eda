package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cspnet",
	Short: "CSP-NET website server",
	Long: `cspnet serves the CSP-NET site: a home page and a credits page behind a
single navigation bar, with per-visitor navigation state.

Use "cspnet [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
