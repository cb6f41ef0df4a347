package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string    `json:"-" gorm:"not null"`
	FullName       string    `json:"full_name,omitempty"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName falls back to the email when no full name was provided.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// SocialAccount links a user to an external identity provider. Lookup and
// insert only; the OAuth flow itself is not part of this service.
type SocialAccount struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Provider string    `json:"provider" gorm:"not null;uniqueIndex:uq_social_provider_id,priority:1"`
	SocialID string    `json:"social_id" gorm:"not null;uniqueIndex:uq_social_provider_id,priority:2"`
	Email    string    `json:"email" gorm:"not null"`
	LinkedAt time.Time `json:"linked_at"`
}

func (SocialAccount) TableName() string {
	return "social_accounts"
}

type SocialSession struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SocialAccountID uuid.UUID `json:"social_account_id" gorm:"type:uuid;index;not null"`
	AccessToken     string    `json:"-" gorm:"not null"`
	RefreshToken    string    `json:"-"`
	ExpiresAt       time.Time `json:"expires_at" gorm:"index;not null"`
	UserAgent       string    `json:"user_agent,omitempty"`
}

func (SocialSession) TableName() string {
	return "social_sessions"
}
