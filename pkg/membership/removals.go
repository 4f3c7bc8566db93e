package membership

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Removals runs the principal removal workflow. One principal requests
// the removal of another; nothing changes until the target consents.
type Removals struct {
	registry *access.Registry
	removals store.RemovalsStore
}

func NewRemovals(registry *access.Registry, removals store.RemovalsStore) *Removals {
	return &Removals{registry: registry, removals: removals}
}

// Request records a pending removal. Requester and target must both be
// principals, and the target may not be the owner. At most one pending
// request per (holograph, target) exists at a time.
func (s *Removals) Request(requesterID, holographID, targetID string) (*model.PendingPrincipalRemoval, error) {
	if err := s.registry.CanManage(holographID, requesterID); err != nil {
		s.logRequest(holographID, requesterID, targetID, err)
		return nil, err
	}

	isPrincipal, err := s.registry.IsPrincipal(holographID, targetID)
	if err != nil {
		return nil, err
	}
	if !isPrincipal {
		err = fmt.Errorf("user %q is not a principal of holograph %q: %w", targetID, holographID, store.ErrNotFound)
		s.logRequest(holographID, requesterID, targetID, err)
		return nil, err
	}

	isOwner, err := s.registry.IsOwner(holographID, targetID)
	if err != nil {
		return nil, err
	}
	if isOwner {
		err = fmt.Errorf("the owner cannot be removed: %w", access.ErrDenied)
		s.logRequest(holographID, requesterID, targetID, err)
		return nil, err
	}

	removal := &model.PendingPrincipalRemoval{
		ID:            uuid.NewString(),
		HolographID:   holographID,
		TargetUserID:  targetID,
		RequestedByID: requesterID,
		Status:        model.RemovalPending,
	}
	if err := s.removals.Create(removal); err != nil {
		s.logRequest(holographID, requesterID, targetID, err)
		return nil, err
	}

	s.logRequest(holographID, requesterID, targetID, nil)
	return removal, nil
}

// Respond resolves a pending removal. Only the target may respond.
// Acceptance removes the principal and the request in one transaction;
// if the target is by then the last principal the whole operation fails
// with a conflict and the request row survives. Decline discards the
// request and changes nothing else.
func (s *Removals) Respond(userID, removalID string, accept bool) error {
	removal, err := s.removals.Fetch(removalID)
	if err != nil {
		return err
	}

	if removal.TargetUserID != userID {
		return fmt.Errorf("removal request %q does not target user %q: %w", removalID, userID, access.ErrDenied)
	}
	if removal.Status != model.RemovalPending {
		return fmt.Errorf("removal request %q is already resolved: %w", removalID, store.ErrInvalidState)
	}

	if accept {
		err = s.removals.Accept(removal)
	} else {
		err = s.removals.Decline(removal)
	}
	if err != nil {
		return err
	}

	audit.Log(audit.RemovalResponseEvent{
		HolographID: removal.HolographID,
		RemovalID:   removal.ID,
		TargetID:    userID,
		Accepted:    accept,
	})
	return nil
}

func (s *Removals) logRequest(holographID, requesterID, targetID string, err error) {
	event := audit.RemovalRequestEvent{
		HolographID: holographID,
		RequesterID: requesterID,
		TargetID:    targetID,
		Success:     err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}
