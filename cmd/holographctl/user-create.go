package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ankush-tewari/holograph/pkg/db"
	gormstore "github.com/ankush-tewari/holograph/pkg/store/gorm"

	"github.com/ankush-tewari/holograph/pkg/model"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Register a user account",
	Long: `Register a user account.

Users are normally registered through the API; this command bootstraps
the first account so a holograph can be created and others invited.

The new user's id is output to STDOUT.

Example:
  holographctl user create alice@example.com
  holographctl user create alice@example.com --name Alice`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "user create requires an email address")
			os.Exit(1)
		}
		email := args[0]
		name, _ := cmd.Flags().GetString("name")

		userID, err := createUser(email, name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s'\n", email)
		fmt.Println(userID)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().StringP("name", "n", "", "Display name")
}

func createUser(email, name string) (string, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}
	if err := gormstore.NewUsersStore(database).Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}
