package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// dbCmd groups the schema management subcommands
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database schema",
	Long:  `Apply, roll back, and inspect database schema migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: 'db' needs a subcommand: migrate, down, or status")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
