package store

import "github.com/ankush-tewari/holograph/pkg/model"

// HolographsStore abstracts holograph lifecycle operations.
type HolographsStore interface {
	// CreateWithOwner inserts the holograph and its owner's principal
	// row in one transaction. A holograph never exists without at least
	// one principal.
	CreateWithOwner(h *model.Holograph) error

	// Fetch retrieves a holograph by id.
	// Returns ErrNotFound if it doesn't exist.
	Fetch(id string) (*model.Holograph, error)

	// TransferOwnership updates the owner, upserts the new owner as a
	// principal, clears any delegate role the new owner held, and
	// appends one immutable ownership-audit row, all in one transaction
	// against a locked holograph row. Returns the previous owner id.
	TransferOwnership(holographID, newOwnerID string) (string, error)

	// OwnershipAudit returns the append-only transfer trail, oldest
	// first.
	OwnershipAudit(holographID string) ([]model.OwnershipAudit, error)
}
