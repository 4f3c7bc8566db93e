package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "holographctl",
	Short: "Run and manage the Holograph estate-records server",
	Long: `holographctl runs and manages the Holograph server.

Holograph stores estate records (vital documents, financial accounts)
encrypted per holograph, and mediates access between the owner, fellow
principals and view-only delegates.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
