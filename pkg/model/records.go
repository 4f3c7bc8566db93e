package model

import (
	"time"

	"github.com/ankush-tewari/holograph/pkg/envelope"
)

// VitalDocument is a record in the vital-documents section. Name and
// notes are envelope-encrypted; FilePath points at an uploaded file in
// the object store, or is null when no file is attached.
type VitalDocument struct {
	ID          string         `gorm:"column:id;primaryKey"`
	HolographID string         `gorm:"column:holograph_id;not null"`
	Name        envelope.Field `gorm:"embedded;embeddedPrefix:name_"`
	Notes       envelope.Field `gorm:"embedded;embeddedPrefix:notes_"`
	FilePath    *string        `gorm:"column:file_path"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (VitalDocument) TableName() string {
	return "vital_documents"
}

// FinancialAccount is a record in the financial-accounts section. Every
// descriptive attribute is envelope-encrypted, including short strings
// like the institution name.
type FinancialAccount struct {
	ID          string         `gorm:"column:id;primaryKey"`
	HolographID string         `gorm:"column:holograph_id;not null"`
	Institution envelope.Field `gorm:"embedded;embeddedPrefix:institution_"`
	AccountName envelope.Field `gorm:"embedded;embeddedPrefix:account_name_"`
	Notes       envelope.Field `gorm:"embedded;embeddedPrefix:notes_"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (FinancialAccount) TableName() string {
	return "financial_accounts"
}
