package store

// AccessStore abstracts membership and permission storage.
type AccessStore interface {
	// IsPrincipal reports whether the user is a principal of the
	// holograph.
	IsPrincipal(holographID, userID string) (bool, error)

	// IsDelegate reports whether the user is a delegate of the
	// holograph.
	IsDelegate(holographID, userID string) (bool, error)

	// CountPrincipals returns the current principal count.
	CountPrincipals(holographID string) (int, error)

	// DelegatePermission returns the delegate's access level for a
	// section. Absent rows read as model.AccessNone.
	DelegatePermission(holographID, userID, sectionID string) (string, error)

	// AddPrincipal inserts a principal row.
	// Returns ErrConflict if the user is already a principal.
	AddPrincipal(holographID, userID string) error

	// RemovePrincipal deletes a principal row inside a transaction that
	// locks the holograph row, re-checks the owner and the principal
	// count. Returns ErrOwnerProtected if the user is the current owner,
	// ErrLastPrincipal if the deletion would leave zero principals,
	// ErrNotFound if no such principal exists.
	RemovePrincipal(holographID, userID string) error

	// AddDelegate inserts a delegate row.
	// Returns ErrConflict if the user is already a delegate.
	AddDelegate(holographID, userID string) error

	// RemoveDelegate deletes the delegate row and cascades: the
	// delegate's section permissions and any outstanding invitations
	// naming them are removed in the same transaction.
	// Returns ErrNotFound if no such delegate exists.
	RemoveDelegate(holographID, userID string) error

	// SetDelegatePermission upserts the delegate's access level for a
	// section. Idempotent.
	SetDelegatePermission(holographID, delegateID, sectionID, accessLevel string) error
}
