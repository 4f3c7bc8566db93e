package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ankush-tewari/holograph/pkg/model"
	"github.com/ankush-tewari/holograph/pkg/store"
)

// Ensure RecordsStore implements store.RecordsStore
var _ store.RecordsStore = (*RecordsStore)(nil)

// RecordsStore implements store.RecordsStore using GORM
type RecordsStore struct {
	db *gorm.DB
}

// NewRecordsStore creates a new RecordsStore
func NewRecordsStore(db *gorm.DB) *RecordsStore {
	return &RecordsStore{db: db}
}

// CreateVitalDocument inserts a vital-documents record
func (s *RecordsStore) CreateVitalDocument(doc *model.VitalDocument) error {
	return s.db.Create(doc).Error
}

// FetchVitalDocument retrieves a record by id, scoped to the holograph
func (s *RecordsStore) FetchVitalDocument(holographID, id string) (*model.VitalDocument, error) {
	var doc model.VitalDocument
	err := s.db.Where("holograph_id = ? AND id = ?", holographID, id).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// ListVitalDocuments returns the holograph's vital-documents rows
func (s *RecordsStore) ListVitalDocuments(holographID string) ([]model.VitalDocument, error) {
	var docs []model.VitalDocument
	err := s.db.Where("holograph_id = ?", holographID).Order("created_at").Find(&docs).Error
	return docs, err
}

// SetVitalDocumentFile sets or clears the record's uploaded file path
func (s *RecordsStore) SetVitalDocumentFile(holographID, id string, filePath *string) error {
	res := s.db.Exec(`
		UPDATE vital_documents SET file_path = ?, updated_at = NOW()
		WHERE holograph_id = ? AND id = ?
	`, filePath, holographID, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteVitalDocument removes the record row
func (s *RecordsStore) DeleteVitalDocument(holographID, id string) error {
	res := s.db.Exec(`
		DELETE FROM vital_documents WHERE holograph_id = ? AND id = ?
	`, holographID, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// CreateFinancialAccount inserts a financial-accounts record
func (s *RecordsStore) CreateFinancialAccount(acct *model.FinancialAccount) error {
	return s.db.Create(acct).Error
}

// FetchFinancialAccount retrieves a record by id, scoped to the holograph
func (s *RecordsStore) FetchFinancialAccount(holographID, id string) (*model.FinancialAccount, error) {
	var acct model.FinancialAccount
	err := s.db.Where("holograph_id = ? AND id = ?", holographID, id).First(&acct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &acct, nil
}

// ListFinancialAccounts returns the holograph's financial-accounts rows
func (s *RecordsStore) ListFinancialAccounts(holographID string) ([]model.FinancialAccount, error) {
	var accts []model.FinancialAccount
	err := s.db.Where("holograph_id = ?", holographID).Order("created_at").Find(&accts).Error
	return accts, err
}
