package model

import (
	"time"

	"github.com/google/uuid"
)

type RefreshToken struct {
	RefreshTokenID        uuid.UUID  `json:"refresh_token_id" gorm:"column:refresh_token_id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RefreshTokenUserID    uuid.UUID  `json:"refresh_token_user_id" gorm:"column:refresh_token_user_id;type:uuid;not null;index"`
	RefreshTokenHash      string     `json:"-" gorm:"column:refresh_token_hash;uniqueIndex;not null"`
	RefreshTokenExpiresAt time.Time  `json:"refresh_token_expires_at" gorm:"column:refresh_token_expires_at;not null"`
	RefreshTokenRevokedAt *time.Time `json:"refresh_token_revoked_at,omitempty" gorm:"column:refresh_token_revoked_at"`
	CreatedAt             time.Time  `json:"created_at" gorm:"column:created_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (t RefreshToken) Usable(now time.Time) bool {
	return t.RefreshTokenRevokedAt == nil && now.Before(t.RefreshTokenExpiresAt)
}
