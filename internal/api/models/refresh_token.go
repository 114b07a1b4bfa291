package models

import (
	"time"
)

// RefreshToken is stored in Redis with a TTL matching ExpiresAt, so expired
// tokens vanish without a cleanup job.
type RefreshToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	Revoked   bool      `json:"revoked"`
}
