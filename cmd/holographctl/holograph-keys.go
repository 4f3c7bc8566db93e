package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ankush-tewari/holograph/pkg/config"
	"github.com/ankush-tewari/holograph/pkg/keys"
	"github.com/ankush-tewari/holograph/pkg/objectstore"
)

// holographKeysCmd represents the holograph keys command
var holographKeysCmd = &cobra.Command{
	Use:   "keys [holograph-id]",
	Short: "Inspect a holograph's key material",
	Long: `Inspect the key material provisioned for a holograph.

Reports where the material lives under HOLOGRAPH_KEYS_DIR and whether
it is complete. Key bytes are never printed.

Example:
  holographctl holograph keys <holograph-id>`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "holograph keys requires a holograph id")
			os.Exit(1)
		}

		if err := showHolographKeys(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to inspect key material: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	holographCmd.AddCommand(holographKeysCmd)
}

func showHolographKeys(holographID string) error {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()
	manager := keys.NewManager(objectstore.NewOsStore(cfg.KeysDir))

	exists, err := manager.Exists(ctx, holographID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("no key material for holograph %s", holographID)
	}

	symKey, err := manager.SymmetricKey(ctx, holographID)
	if err != nil {
		return err
	}

	publicKey, privateKey, symmetricKey := keys.MaterialPaths(holographID)
	fmt.Printf("public key:    %s\n", publicKey)
	fmt.Printf("private key:   %s\n", privateKey)
	fmt.Printf("symmetric key: %s (%d-bit)\n", symmetricKey, len(symKey)*8)

	return nil
}
