package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// AuthToken is an opaque bearer token for a user. A user holds at most one
// token at a time; login reuses the existing token instead of minting a
// new one.
type AuthToken struct {
	BaseModel
	Key       string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"key"`
	UserID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for AuthToken
func (AuthToken) TableName() string {
	return "auth_tokens"
}

// Expired reports whether the token has an expiry in the past
func (t *AuthToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}

// GenerateTokenKey returns a new random 40-character hex token key
func GenerateTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
