package model

import "time"

// Invitation roles.
const (
	RolePrincipal = "principal"
	RoleDelegate  = "delegate"
)

// Invitation statuses. Accepted and Declined are terminal: the row is
// deleted on either transition, so only pending rows persist.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

// Invitation is a pending offer of principal or delegate access to a
// registered user, created by a principal.
type Invitation struct {
	ID           string    `gorm:"column:id;primaryKey"`
	HolographID  string    `gorm:"column:holograph_id;not null"`
	InviterID    string    `gorm:"column:inviter_id;not null"`
	InviteeEmail string    `gorm:"column:invitee_email;not null"`
	Role         string    `gorm:"column:role;not null"`
	Status       string    `gorm:"column:status;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Invitation) TableName() string {
	return "invitations"
}
