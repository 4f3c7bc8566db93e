package membership

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ankush-tewari/holograph/pkg/access"
	"github.com/ankush-tewari/holograph/pkg/audit"
	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Invitations runs the invitation workflow. A principal invites a
// registered user by email into a role; the invitee accepts or declines.
type Invitations struct {
	registry    *access.Registry
	invitations store.InvitationsStore
	users       store.UsersStore
}

func NewInvitations(registry *access.Registry, invitations store.InvitationsStore, users store.UsersStore) *Invitations {
	return &Invitations{
		registry:    registry,
		invitations: invitations,
		users:       users,
	}
}

// Invite creates a pending invitation. The inviter must be a principal
// of the holograph, the invitee email must belong to a registered user,
// and the invitee must not already hold a role or a pending invitation
// on the holograph.
func (s *Invitations) Invite(inviterID, holographID, inviteeEmail, role string) (*model.Invitation, error) {
	if role != model.RolePrincipal && role != model.RoleDelegate {
		return nil, fmt.Errorf("unknown role %q: %w", role, access.ErrValidation)
	}
	if inviteeEmail == "" {
		return nil, fmt.Errorf("invitee email is required: %w", access.ErrValidation)
	}

	if err := s.registry.CanManage(holographID, inviterID); err != nil {
		s.logInvite(holographID, inviterID, inviteeEmail, role, err)
		return nil, err
	}

	invitee, err := s.users.ByEmail(inviteeEmail)
	if err != nil {
		s.logInvite(holographID, inviterID, inviteeEmail, role, err)
		return nil, err
	}

	// A user holds at most one role per holograph.
	isPrincipal, err := s.registry.IsPrincipal(holographID, invitee.ID)
	if err != nil {
		return nil, err
	}
	isDelegate, err := s.registry.IsDelegate(holographID, invitee.ID)
	if err != nil {
		return nil, err
	}
	if isPrincipal || isDelegate {
		err = fmt.Errorf("user %q already holds a role on holograph %q: %w", invitee.ID, holographID, store.ErrConflict)
		s.logInvite(holographID, inviterID, inviteeEmail, role, err)
		return nil, err
	}

	hasPending, err := s.invitations.HasPendingForEmail(holographID, inviteeEmail)
	if err != nil {
		return nil, err
	}
	if hasPending {
		err = fmt.Errorf("a pending invitation for %q already exists: %w", inviteeEmail, store.ErrConflict)
		s.logInvite(holographID, inviterID, inviteeEmail, role, err)
		return nil, err
	}

	inv := &model.Invitation{
		ID:           uuid.NewString(),
		HolographID:  holographID,
		InviterID:    inviterID,
		InviteeEmail: inviteeEmail,
		Role:         role,
		Status:       model.InvitationPending,
	}
	// The store's partial unique index closes the race between the
	// pending check above and the insert.
	if err := s.invitations.Create(inv); err != nil {
		s.logInvite(holographID, inviterID, inviteeEmail, role, err)
		return nil, err
	}

	s.logInvite(holographID, inviterID, inviteeEmail, role, nil)
	return inv, nil
}

// Respond resolves a pending invitation. Only the invitee may respond;
// accepting grants the invited role, declining simply discards the
// invitation. Both outcomes remove the pending row.
func (s *Invitations) Respond(userID, invitationID string, accept bool) error {
	inv, err := s.invitations.Fetch(invitationID)
	if err != nil {
		return err
	}

	user, err := s.users.ByID(userID)
	if err != nil {
		return err
	}
	if user.Email != inv.InviteeEmail {
		return fmt.Errorf("invitation %q is not addressed to user %q: %w", invitationID, userID, access.ErrDenied)
	}

	if inv.Status != model.InvitationPending {
		return fmt.Errorf("invitation %q is already resolved: %w", invitationID, store.ErrInvalidState)
	}

	if accept {
		err = s.invitations.Accept(inv, userID)
	} else {
		err = s.invitations.Decline(inv)
	}
	if err != nil {
		return err
	}

	audit.Log(audit.InvitationResponseEvent{
		HolographID:  inv.HolographID,
		InvitationID: inv.ID,
		UserID:       userID,
		Role:         inv.Role,
		Accepted:     accept,
	})
	return nil
}

func (s *Invitations) logInvite(holographID, inviterID, inviteeEmail, role string, err error) {
	event := audit.InvitationEvent{
		HolographID:  holographID,
		InviterID:    inviterID,
		InviteeEmail: inviteeEmail,
		Role:         role,
		Success:      err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
}
