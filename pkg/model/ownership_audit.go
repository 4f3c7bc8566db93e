package model

import "time"

// OwnershipAudit is one append-only row per ownership transfer. Rows are
// never updated or deleted.
type OwnershipAudit struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	HolographID string    `gorm:"column:holograph_id;not null"`
	OldOwnerID  string    `gorm:"column:old_owner_id;not null"`
	NewOwnerID  string    `gorm:"column:new_owner_id;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (OwnershipAudit) TableName() string {
	return "ownership_audit"
}
