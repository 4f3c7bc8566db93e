package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Ensure RemovalsStore implements store.RemovalsStore
var _ store.RemovalsStore = (*RemovalsStore)(nil)

// RemovalsStore implements store.RemovalsStore using GORM
type RemovalsStore struct {
	db *gorm.DB
}

// NewRemovalsStore creates a new RemovalsStore
func NewRemovalsStore(db *gorm.DB) *RemovalsStore {
	return &RemovalsStore{db: db}
}

// Create inserts a pending removal request. The partial unique index on
// (holograph_id, target_user_id) WHERE status = 'pending' makes a second
// pending request for the same target a conflict.
func (s *RemovalsStore) Create(r *model.PendingPrincipalRemoval) error {
	res := s.db.Exec(`
		INSERT INTO pending_principal_removals (id, holograph_id, target_user_id, requested_by_id, status)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (holograph_id, target_user_id) WHERE status = 'pending' DO NOTHING
	`, r.ID, r.HolographID, r.TargetUserID, r.RequestedByID, r.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrConflict
	}
	return nil
}

// Fetch retrieves a removal request by id
func (s *RemovalsStore) Fetch(id string) (*model.PendingPrincipalRemoval, error) {
	var r model.PendingPrincipalRemoval
	if err := s.db.Where("id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// Accept removes the target's principal row and deletes the request in
// one transaction. The last-principal guard aborts the whole transaction
// so a guarded failure leaves the pending request in place.
func (s *RemovalsStore) Accept(r *model.PendingPrincipalRemoval) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := removePrincipalLocked(tx, r.HolographID, r.TargetUserID); err != nil {
			return err
		}

		del := tx.Exec(`
			DELETE FROM pending_principal_removals WHERE id = ? AND status = 'pending'
		`, r.ID)
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return store.ErrInvalidState
		}
		return nil
	})
}

// Decline deletes the request with no other side effect
func (s *RemovalsStore) Decline(r *model.PendingPrincipalRemoval) error {
	del := s.db.Exec(`
		DELETE FROM pending_principal_removals WHERE id = ? AND status = 'pending'
	`, r.ID)
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return store.ErrInvalidState
	}
	return nil
}
