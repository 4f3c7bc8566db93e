package store

import "github.com/ankush-tewari/holograph/pkg/model"

// RemovalsStore abstracts pending principal-removal persistence. Like
// invitations, removal requests are ephemeral: both outcomes delete the
// row.
type RemovalsStore interface {
	// Create inserts a pending removal request.
	// Returns ErrConflict if a pending request for the same holograph
	// and target already exists.
	Create(r *model.PendingPrincipalRemoval) error

	// Fetch retrieves a removal request by id.
	// Returns ErrNotFound if it doesn't exist.
	Fetch(id string) (*model.PendingPrincipalRemoval, error)

	// Accept removes the target's principal row and deletes the
	// request, in one transaction against a locked holograph row. If
	// the removal would leave zero principals the whole transaction
	// aborts with ErrLastPrincipal and the request row survives.
	Accept(r *model.PendingPrincipalRemoval) error

	// Decline deletes the request with no other side effect.
	Decline(r *model.PendingPrincipalRemoval) error
}
