package entity

import (
	"time"

	"github.com/darkr4m/actually-star-k9/core/entity"

	"github.com/google/uuid"
)

// GoogleCredential is the OAuth token bundle for one user's Google link.
// Exactly one row exists per user; re-linking overwrites it in place.
type GoogleCredential struct {
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	AccessToken  string    `db:"access_token" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	TokenURI     string    `db:"token_uri" json:"-"`
	ClientID     string    `db:"client_id" json:"-"`
	ClientSecret string    `db:"client_secret" json:"-"`
	Scopes       string    `db:"scopes" json:"scopes"`
	entity.BaseEntity
}

// Expired reports whether the access token is past its expiry.
func (c *GoogleCredential) Expired() bool {
	return time.Now().After(c.ExpiresAt)
}
