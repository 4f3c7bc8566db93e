package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Ensure InvitationsStore implements store.InvitationsStore
var _ store.InvitationsStore = (*InvitationsStore)(nil)

// InvitationsStore implements store.InvitationsStore using GORM
type InvitationsStore struct {
	db *gorm.DB
}

// NewInvitationsStore creates a new InvitationsStore
func NewInvitationsStore(db *gorm.DB) *InvitationsStore {
	return &InvitationsStore{db: db}
}

// Create inserts a pending invitation. The partial unique index on
// (holograph_id, invitee_email) WHERE status = 'pending' makes duplicate
// pending invites a conflict.
func (s *InvitationsStore) Create(inv *model.Invitation) error {
	res := s.db.Exec(`
		INSERT INTO invitations (id, holograph_id, inviter_id, invitee_email, role, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (holograph_id, invitee_email) WHERE status = 'pending' DO NOTHING
	`, inv.ID, inv.HolographID, inv.InviterID, inv.InviteeEmail, inv.Role, inv.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrConflict
	}
	return nil
}

// Fetch retrieves an invitation by id
func (s *InvitationsStore) Fetch(id string) (*model.Invitation, error) {
	var inv model.Invitation
	if err := s.db.Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// HasPendingForEmail reports whether a pending invitation exists for the
// holograph and email
func (s *InvitationsStore) HasPendingForEmail(holographID, email string) (bool, error) {
	var exists bool
	err := s.db.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM invitations
			WHERE holograph_id = ? AND invitee_email = ? AND status = 'pending'
		)
	`, holographID, email).Scan(&exists).Error
	return exists, err
}

// Accept atomically creates the invited relationship and deletes the
// invitation. Deleting zero rows means someone already resolved it.
func (s *InvitationsStore) Accept(inv *model.Invitation, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		del := tx.Exec(`
			DELETE FROM invitations WHERE id = ? AND status = 'pending'
		`, inv.ID)
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return store.ErrInvalidState
		}

		var table string
		switch inv.Role {
		case model.RolePrincipal:
			table = "principals"
		case model.RoleDelegate:
			table = "delegates"
		default:
			return fmt.Errorf("invitation %q has unknown role %q", inv.ID, inv.Role)
		}

		ins := tx.Exec(fmt.Sprintf(`
			INSERT INTO %s (holograph_id, user_id)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, table), inv.HolographID, userID)
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 0 {
			return store.ErrConflict
		}
		return nil
	})
}

// Decline deletes the invitation with no other side effect
func (s *InvitationsStore) Decline(inv *model.Invitation) error {
	del := s.db.Exec(`
		DELETE FROM invitations WHERE id = ? AND status = 'pending'
	`, inv.ID)
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return store.ErrInvalidState
	}
	return nil
}
