package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/config"
	"github.com/ankush-tewari/holograph/pkg/db"
	"github.com/ankush-tewari/holograph/pkg/fieldcipher"
	"github.com/ankush-tewari/holograph/pkg/holograph"
	"github.com/ankush-tewari/holograph/pkg/keys"
	"github.com/ankush-tewari/holograph/pkg/membership"
	"github.com/ankush-tewari/holograph/pkg/objectstore"
	"github.com/ankush-tewari/holograph/pkg/records"
	"github.com/ankush-tewari/holograph/pkg/server"
	"github.com/ankush-tewari/holograph/pkg/server/endpoints"
	gormstore "github.com/ankush-tewari/holograph/pkg/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Holograph application server",
	Long: `Run the Holograph application server.

To run the server requires the environment variable DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		gormDB, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		files := objectstore.NewOsStore(cfg.KeysDir)
		keyManager := keys.NewManager(files)
		cipher := fieldcipher.New(keyManager)

		accessStore := gormstore.NewAccessStore(gormDB)
		holographsStore := gormstore.NewHolographsStore(gormDB)
		usersStore := gormstore.NewUsersStore(gormDB)
		registry := access.NewRegistry(accessStore, holographsStore)

		services := server.Services{
			Registry:    registry,
			Holographs:  holograph.NewService(registry, holographsStore, usersStore, keyManager),
			Invitations: membership.NewInvitations(registry, gormstore.NewInvitationsStore(gormDB), usersStore),
			Removals:    membership.NewRemovals(registry, gormstore.NewRemovalsStore(gormDB)),
			Transfers:   membership.NewTransfers(holographsStore, usersStore),
			Records:     records.NewService(registry, cipher, gormstore.NewRecordsStore(gormDB), files),
			Users:       usersStore,
			Health:      gormstore.NewHealthStore(gormDB),
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(services, cfg, gormDB, host, port)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
