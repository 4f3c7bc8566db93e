package store

import "github.com/ankush-tewari/holograph/pkg/model"

// RecordsStore abstracts the encrypted record rows. Values arrive and
// leave as envelope.Field triples; encryption happens in pkg/records
// before rows reach this interface.
type RecordsStore interface {
	// CreateVitalDocument inserts a vital-documents record.
	CreateVitalDocument(doc *model.VitalDocument) error

	// FetchVitalDocument retrieves a record by id, scoped to the
	// holograph. Returns ErrNotFound if it doesn't exist.
	FetchVitalDocument(holographID, id string) (*model.VitalDocument, error)

	// ListVitalDocuments returns the holograph's vital-documents rows.
	ListVitalDocuments(holographID string) ([]model.VitalDocument, error)

	// SetVitalDocumentFile sets or clears (nil) the record's uploaded
	// file path.
	SetVitalDocumentFile(holographID, id string, filePath *string) error

	// DeleteVitalDocument removes the record row.
	DeleteVitalDocument(holographID, id string) error

	// CreateFinancialAccount inserts a financial-accounts record.
	CreateFinancialAccount(acct *model.FinancialAccount) error

	// FetchFinancialAccount retrieves a record by id, scoped to the
	// holograph. Returns ErrNotFound if it doesn't exist.
	FetchFinancialAccount(holographID, id string) (*model.FinancialAccount, error)

	// ListFinancialAccounts returns the holograph's financial-accounts
	// rows.
	ListFinancialAccounts(holographID string) ([]model.FinancialAccount, error)
}
