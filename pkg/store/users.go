package store

import "github.com/ankush-tewari/holograph/pkg/model"

// UsersStore abstracts registered-user lookup. Account management and
// authentication live outside this core.
type UsersStore interface {
	// ByID retrieves a user by id.
	// Returns ErrNotFound if no such user exists.
	ByID(id string) (*model.User, error)

	// ByEmail retrieves a user by email address.
	// Returns ErrNotFound if no account is registered for the email.
	ByEmail(email string) (*model.User, error)

	// Create inserts a user.
	// Returns ErrConflict if the email is already registered.
	Create(u *model.User) error
}
