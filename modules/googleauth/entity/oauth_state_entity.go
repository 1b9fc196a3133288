package entity

import (
	"time"

	"github.com/darkr4m/actually-star-k9/core/entity"

	"github.com/google/uuid"
)

// OAuthState is a one-time anti-forgery value binding an authorization
// request to the user that initiated it.
type OAuthState struct {
	State     string    `db:"state"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	entity.BaseEntity
}
