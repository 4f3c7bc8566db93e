package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/config"
	"github.com/ankush-tewari/holograph/pkg/db"
	"github.com/ankush-tewari/holograph/pkg/holograph"
	"github.com/ankush-tewari/holograph/pkg/keys"
	"github.com/ankush-tewari/holograph/pkg/objectstore"
	gormstore "github.com/ankush-tewari/holograph/pkg/store/gorm"
)

// holographCreateCmd represents the holograph create command
var holographCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a holograph",
	Long: `Create a holograph owned by an existing user.

This command creates the holograph row, makes the owner its first
principal and provisions the holograph's key material under
HOLOGRAPH_KEYS_DIR.

The new holograph's id is output to STDOUT.

Example:
  holographctl holograph create "Estate of Alice" --owner <user-id>`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "holograph create requires a title")
			os.Exit(1)
		}
		title := args[0]
		ownerID, _ := cmd.Flags().GetString("owner")
		if ownerID == "" {
			fmt.Fprintln(os.Stderr, "--owner is required")
			os.Exit(1)
		}

		holographID, err := createHolograph(ownerID, title)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create holograph: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created holograph '%s'\n", title)
		fmt.Println(holographID)
	},
}

var holographCmd = &cobra.Command{
	Use:   "holograph",
	Short: "Manage holographs",
	Long:  `Manage holographs and their key material.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'holograph' requires a subcommand (create, keys)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(holographCmd)
	holographCmd.AddCommand(holographCreateCmd)
	holographCreateCmd.Flags().StringP("owner", "u", "", "Owner user id")
}

func createHolograph(ownerID, title string) (string, error) {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	holographsStore := gormstore.NewHolographsStore(database)
	usersStore := gormstore.NewUsersStore(database)
	registry := access.NewRegistry(gormstore.NewAccessStore(database), holographsStore)
	keyManager := keys.NewManager(objectstore.NewOsStore(cfg.KeysDir))

	service := holograph.NewService(registry, holographsStore, usersStore, keyManager)
	h, err := service.Create(context.Background(), ownerID, title)
	if err != nil {
		return "", err
	}
	return h.ID, nil
}
