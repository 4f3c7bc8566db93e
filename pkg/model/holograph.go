package model

import "time"

// Holograph is a tenant: one person's collection of estate records,
// shared with a small set of collaborators. The owner is always also a
// principal.
type Holograph struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	OwnerID   string    `gorm:"column:owner_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Deterministic object-store locations of the key material,
	// recorded at creation. There is a single fixed "current" version.
	PublicKeyPath    string `gorm:"column:public_key_path"`
	PrivateKeyPath   string `gorm:"column:private_key_path"`
	SymmetricKeyPath string `gorm:"column:symmetric_key_path"`
}

func (Holograph) TableName() string {
	return "holographs"
}
