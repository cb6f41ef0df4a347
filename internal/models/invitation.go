package models

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
)

// InvitationTTL is how long a fresh invitation remains formally valid.
// The timestamp is stored for clients; no code path rejects an expired
// but still pending invitation.
const InvitationTTL = 7 * 24 * time.Hour

// Invitation is an email-addressed offer to join a car's passenger set,
// reachable by its unguessable token. Lifecycle: pending -> accepted or
// pending -> rejected, both terminal; the car owner may delete it in any
// state.
type Invitation struct {
	ID           uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	CarID        uuid.UUID        `json:"car_id" gorm:"type:uuid;index;not null"`
	InvitedEmail string           `json:"invited_email" gorm:"index;not null"`
	Token        string           `json:"token" gorm:"uniqueIndex;not null"`
	Status       InvitationStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time        `json:"created_at"`
	ExpiresAt    time.Time        `json:"expires_at"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// Pending reports whether the invitation can still be accepted or rejected.
func (i *Invitation) Pending() bool {
	return i.Status == InvitationStatusPending
}
