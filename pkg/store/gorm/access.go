package gorm

import (
	"gorm.io/gorm"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Ensure AccessStore implements store.AccessStore
var _ store.AccessStore = (*AccessStore)(nil)

// AccessStore implements store.AccessStore using GORM
type AccessStore struct {
	db *gorm.DB
}

// NewAccessStore creates a new AccessStore
func NewAccessStore(db *gorm.DB) *AccessStore {
	return &AccessStore{db: db}
}

// IsPrincipal reports whether the user is a principal of the holograph
func (s *AccessStore) IsPrincipal(holographID, userID string) (bool, error) {
	var exists bool
	err := s.db.Raw(`
		SELECT EXISTS(SELECT 1 FROM principals WHERE holograph_id = ? AND user_id = ?)
	`, holographID, userID).Scan(&exists).Error
	return exists, err
}

// IsDelegate reports whether the user is a delegate of the holograph
func (s *AccessStore) IsDelegate(holographID, userID string) (bool, error) {
	var exists bool
	err := s.db.Raw(`
		SELECT EXISTS(SELECT 1 FROM delegates WHERE holograph_id = ? AND user_id = ?)
	`, holographID, userID).Scan(&exists).Error
	return exists, err
}

// CountPrincipals returns the current principal count
func (s *AccessStore) CountPrincipals(holographID string) (int, error) {
	var count int
	err := s.db.Raw(`
		SELECT COUNT(*) FROM principals WHERE holograph_id = ?
	`, holographID).Scan(&count).Error
	return count, err
}

// DelegatePermission returns the delegate's access level for a section.
// Absent rows read as "none".
func (s *AccessStore) DelegatePermission(holographID, userID, sectionID string) (string, error) {
	var level string
	res := s.db.Raw(`
		SELECT access_level FROM delegate_permissions
		WHERE holograph_id = ? AND delegate_id = ? AND section_id = ?
	`, holographID, userID, sectionID).Scan(&level)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return model.AccessNone, nil
	}
	return level, nil
}

// AddPrincipal inserts a principal row
func (s *AccessStore) AddPrincipal(holographID, userID string) error {
	res := s.db.Exec(`
		INSERT INTO principals (holograph_id, user_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, holographID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrConflict
	}
	return nil
}

// RemovePrincipal deletes a principal row. The holograph row is locked
// and the count re-checked inside the transaction so concurrent removals
// cannot jointly drop the count to zero.
func (s *AccessStore) RemovePrincipal(holographID, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return removePrincipalLocked(tx, holographID, userID)
	})
}

// removePrincipalLocked is shared with the removal-acceptance path in
// RemovalsStore, which needs the same guards inside its own transaction.
// The owner comparison happens here, against the locked row, because
// ownership can change between a removal request and its acceptance.
func removePrincipalLocked(tx *gorm.DB, holographID, userID string) error {
	var ownerID string
	res := tx.Raw(`SELECT owner_id FROM holographs WHERE id = ? FOR UPDATE`, holographID).Scan(&ownerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	if ownerID == userID {
		return store.ErrOwnerProtected
	}

	var count int
	if err := tx.Raw(`
		SELECT COUNT(*) FROM principals WHERE holograph_id = ?
	`, holographID).Scan(&count).Error; err != nil {
		return err
	}
	if count <= 1 {
		return store.ErrLastPrincipal
	}

	del := tx.Exec(`
		DELETE FROM principals WHERE holograph_id = ? AND user_id = ?
	`, holographID, userID)
	if del.Error != nil {
		return del.Error
	}
	if del.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// AddDelegate inserts a delegate row
func (s *AccessStore) AddDelegate(holographID, userID string) error {
	res := s.db.Exec(`
		INSERT INTO delegates (holograph_id, user_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, holographID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrConflict
	}
	return nil
}

// RemoveDelegate deletes the delegate row and cascades to the delegate's
// permissions and any outstanding invitations naming them.
func (s *AccessStore) RemoveDelegate(holographID, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM delegate_permissions WHERE holograph_id = ? AND delegate_id = ?
		`, holographID, userID).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
			DELETE FROM invitations
			WHERE holograph_id = ?
			  AND invitee_email = (SELECT email FROM users WHERE id = ?)
		`, holographID, userID).Error; err != nil {
			return err
		}

		del := tx.Exec(`
			DELETE FROM delegates WHERE holograph_id = ? AND user_id = ?
		`, holographID, userID)
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

// SetDelegatePermission upserts the delegate's access level for a
// section
func (s *AccessStore) SetDelegatePermission(holographID, delegateID, sectionID, accessLevel string) error {
	return s.db.Exec(`
		INSERT INTO delegate_permissions (holograph_id, delegate_id, section_id, access_level)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (holograph_id, delegate_id, section_id)
		DO UPDATE SET access_level = EXCLUDED.access_level
	`, holographID, delegateID, sectionID, accessLevel).Error
}
