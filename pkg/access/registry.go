// Package access is the authorization oracle for the Holograph core.
//
// Every component consults the Registry instead of re-implementing role
// checks. The policy is small and fixed:
//
//	Owner      read all sections, write all sections, manage membership
//	Principal  read all, write all, manage (but cannot remove the owner
//	           or drop the last principal)
//	Delegate   read only sections granted view-only, never write, never
//	           manage
package access

import (
	"errors"
	"fmt"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// ErrDenied is returned for every failed authorization check.
var ErrDenied = errors.New("authorization denied")

// ErrValidation is returned for malformed inputs (unknown access level,
// empty ids). Never retried, returned straight to the caller.
var ErrValidation = errors.New("validation error")

// Registry answers authorization questions and applies membership
// mutations with the policy's guard rails.
type Registry struct {
	access     store.AccessStore
	holographs store.HolographsStore
}

func NewRegistry(access store.AccessStore, holographs store.HolographsStore) *Registry {
	return &Registry{access: access, holographs: holographs}
}

// IsOwner reports whether the user owns the holograph.
func (r *Registry) IsOwner(holographID, userID string) (bool, error) {
	h, err := r.holographs.Fetch(holographID)
	if err != nil {
		return false, err
	}
	return h.OwnerID == userID, nil
}

// IsPrincipal reports whether the user is a principal.
func (r *Registry) IsPrincipal(holographID, userID string) (bool, error) {
	return r.access.IsPrincipal(holographID, userID)
}

// IsDelegate reports whether the user is a delegate.
func (r *Registry) IsDelegate(holographID, userID string) (bool, error) {
	return r.access.IsDelegate(holographID, userID)
}

// DelegatePermission returns the delegate's access level for a section.
func (r *Registry) DelegatePermission(holographID, userID, sectionID string) (string, error) {
	return r.access.DelegatePermission(holographID, userID, sectionID)
}

// CanRead authorizes a read of the given section. Principals read every
// section; delegates only sections granted view-only.
func (r *Registry) CanRead(holographID, userID, sectionID string) error {
	isPrincipal, err := r.access.IsPrincipal(holographID, userID)
	if err != nil {
		return err
	}
	if isPrincipal {
		return nil
	}

	isDelegate, err := r.access.IsDelegate(holographID, userID)
	if err != nil {
		return err
	}
	if !isDelegate {
		return ErrDenied
	}

	level, err := r.access.DelegatePermission(holographID, userID, sectionID)
	if err != nil {
		return err
	}
	if level != model.AccessViewOnly {
		return ErrDenied
	}
	return nil
}

// CanWrite authorizes a write of the given section. Delegates never
// write, whatever their access level.
func (r *Registry) CanWrite(holographID, userID, sectionID string) error {
	isPrincipal, err := r.access.IsPrincipal(holographID, userID)
	if err != nil {
		return err
	}
	if !isPrincipal {
		return ErrDenied
	}
	return nil
}

// CanManage authorizes membership management. Only principals manage;
// the owner is a principal by invariant.
func (r *Registry) CanManage(holographID, userID string) error {
	isPrincipal, err := r.access.IsPrincipal(holographID, userID)
	if err != nil {
		return err
	}
	if !isPrincipal {
		return ErrDenied
	}
	return nil
}

// AddPrincipal inserts a principal relationship.
func (r *Registry) AddPrincipal(holographID, userID string) error {
	return r.access.AddPrincipal(holographID, userID)
}

// RemovePrincipal removes a principal relationship. The owner check here
// is only a fast rejection; the store re-checks the owner and the
// last-principal invariant against the locked holograph row.
func (r *Registry) RemovePrincipal(holographID, userID string) error {
	isOwner, err := r.IsOwner(holographID, userID)
	if err != nil {
		return err
	}
	if isOwner {
		return fmt.Errorf("the owner cannot be removed: %w", ErrDenied)
	}

	return r.access.RemovePrincipal(holographID, userID)
}

// AddDelegate inserts a delegate relationship.
func (r *Registry) AddDelegate(holographID, userID string) error {
	return r.access.AddDelegate(holographID, userID)
}

// RemoveDelegate removes a delegate and cascades to their permissions
// and outstanding invitations.
func (r *Registry) RemoveDelegate(holographID, userID string) error {
	return r.access.RemoveDelegate(holographID, userID)
}

// SetDelegatePermission upserts a delegate's access level on a section.
// The target must already be a delegate of the holograph.
func (r *Registry) SetDelegatePermission(holographID, delegateID, sectionID, accessLevel string) error {
	if accessLevel != model.AccessNone && accessLevel != model.AccessViewOnly {
		return fmt.Errorf("unknown access level %q: %w", accessLevel, ErrValidation)
	}
	if sectionID == "" {
		return fmt.Errorf("section id is required: %w", ErrValidation)
	}

	isDelegate, err := r.access.IsDelegate(holographID, delegateID)
	if err != nil {
		return err
	}
	if !isDelegate {
		return fmt.Errorf("user %q is not a delegate of holograph %q: %w", delegateID, holographID, store.ErrNotFound)
	}

	return r.access.SetDelegatePermission(holographID, delegateID, sectionID, accessLevel)
}
