package model

import "time"

// Removal request statuses. Only pending rows persist; acceptance and
// decline both delete the row.
const (
	RemovalPending = "pending"
)

// PendingPrincipalRemoval is a consent-based request to remove a
// principal. Unique per (holograph, target) while pending.
type PendingPrincipalRemoval struct {
	ID            string    `gorm:"column:id;primaryKey"`
	HolographID   string    `gorm:"column:holograph_id;not null"`
	TargetUserID  string    `gorm:"column:target_user_id;not null"`
	RequestedByID string    `gorm:"column:requested_by_id;not null"`
	Status        string    `gorm:"column:status;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PendingPrincipalRemoval) TableName() string {
	return "pending_principal_removals"
}
