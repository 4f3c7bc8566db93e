package store

import "github.com/ankush-tewari/holograph/pkg/model"

// InvitationsStore abstracts invitation persistence. Invitations are
// ephemeral: acceptance and decline both remove the row.
type InvitationsStore interface {
	// Create inserts a pending invitation.
	// Returns ErrConflict if a pending invitation for the same
	// holograph and email already exists.
	Create(inv *model.Invitation) error

	// Fetch retrieves an invitation by id.
	// Returns ErrNotFound if it doesn't exist (including after
	// resolution).
	Fetch(id string) (*model.Invitation, error)

	// HasPendingForEmail reports whether a pending invitation exists
	// for the holograph and email.
	HasPendingForEmail(holographID, email string) (bool, error)

	// Accept atomically creates the invited relationship (principal or
	// delegate row for userID, per inv.Role) and deletes the
	// invitation.
	Accept(inv *model.Invitation, userID string) error

	// Decline deletes the invitation with no other side effect.
	Decline(inv *model.Invitation) error
}
