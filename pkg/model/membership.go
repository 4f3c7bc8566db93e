package model

import "time"

// Principal is a full-access collaborator on a holograph.
type Principal struct {
	HolographID string    `gorm:"column:holograph_id;primaryKey"`
	UserID      string    `gorm:"column:user_id;primaryKey"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Principal) TableName() string {
	return "principals"
}

// Delegate is a restricted collaborator whose read access is scoped per
// section via DelegatePermission rows. Delegates never write.
type Delegate struct {
	HolographID string    `gorm:"column:holograph_id;primaryKey"`
	UserID      string    `gorm:"column:user_id;primaryKey"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Delegate) TableName() string {
	return "delegates"
}

// Access levels for a delegate on a section.
const (
	AccessNone     = "none"
	AccessViewOnly = "view-only"
)

// DelegatePermission grants a delegate an access level on one section.
type DelegatePermission struct {
	HolographID string `gorm:"column:holograph_id;primaryKey"`
	DelegateID  string `gorm:"column:delegate_id;primaryKey"`
	SectionID   string `gorm:"column:section_id;primaryKey"`
	AccessLevel string `gorm:"column:access_level;not null"`
}

func (DelegatePermission) TableName() string {
	return "delegate_permissions"
}

// Section slugs for the record types this repository ships. Sections are
// defined externally; only their ids appear here.
const (
	SectionVitalDocuments    = "vital-documents"
	SectionFinancialAccounts = "financial-accounts"
)
