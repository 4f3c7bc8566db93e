package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Ensure HolographsStore implements store.HolographsStore
var _ store.HolographsStore = (*HolographsStore)(nil)

// HolographsStore implements store.HolographsStore using GORM
type HolographsStore struct {
	db *gorm.DB
}

// NewHolographsStore creates a new HolographsStore
func NewHolographsStore(db *gorm.DB) *HolographsStore {
	return &HolographsStore{db: db}
}

// CreateWithOwner inserts the holograph and its owner's principal row in
// one transaction.
func (s *HolographsStore) CreateWithOwner(h *model.Holograph) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(h).Error; err != nil {
			return err
		}

		return tx.Exec(`
			INSERT INTO principals (holograph_id, user_id)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, h.ID, h.OwnerID).Error
	})
}

// Fetch retrieves a holograph by id
func (s *HolographsStore) Fetch(id string) (*model.Holograph, error) {
	var h model.Holograph
	if err := s.db.Where("id = ?", id).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

// TransferOwnership updates the owner, upserts the new owner as a
// principal, clears any delegate role the new owner held, and appends
// an ownership-audit row, all against a locked holograph row.
func (s *HolographsStore) TransferOwnership(holographID, newOwnerID string) (string, error) {
	var oldOwnerID string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Raw(`SELECT owner_id FROM holographs WHERE id = ? FOR UPDATE`, holographID).Scan(&oldOwnerID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return store.ErrNotFound
		}

		if err := tx.Exec(`
			UPDATE holographs SET owner_id = ?, updated_at = NOW() WHERE id = ?
		`, newOwnerID, holographID).Error; err != nil {
			return err
		}

		// The owner must always be a principal.
		if err := tx.Exec(`
			INSERT INTO principals (holograph_id, user_id)
			VALUES (?, ?)
			ON CONFLICT DO NOTHING
		`, holographID, newOwnerID).Error; err != nil {
			return err
		}

		// A user is a principal or a delegate, never both. If the new
		// owner was a delegate, that role and its permissions go away.
		if err := tx.Exec(`
			DELETE FROM delegate_permissions WHERE holograph_id = ? AND delegate_id = ?
		`, holographID, newOwnerID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			DELETE FROM delegates WHERE holograph_id = ? AND user_id = ?
		`, holographID, newOwnerID).Error; err != nil {
			return err
		}

		return tx.Exec(`
			INSERT INTO ownership_audit (holograph_id, old_owner_id, new_owner_id)
			VALUES (?, ?, ?)
		`, holographID, oldOwnerID, newOwnerID).Error
	})
	if err != nil {
		return "", err
	}

	return oldOwnerID, nil
}

// OwnershipAudit returns the append-only transfer trail, oldest first
func (s *HolographsStore) OwnershipAudit(holographID string) ([]model.OwnershipAudit, error) {
	var rows []model.OwnershipAudit
	err := s.db.Raw(`
		SELECT id, holograph_id, old_owner_id, new_owner_id, created_at
		FROM ownership_audit
		WHERE holograph_id = ?
		ORDER BY id
	`, holographID).Scan(&rows).Error
	return rows, err
}
