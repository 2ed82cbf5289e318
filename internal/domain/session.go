package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is one issued refresh token. Only the SHA-256 hash of the token is
// stored; the raw value leaves the server exactly once, in the login response.
type Session struct {
	ID               uuid.UUID  `json:"id" db:"session_id"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	RefreshTokenHash string     `json:"-" db:"refresh_token_hash"`
	UserAgent        *string    `json:"user_agent,omitempty" db:"user_agent"`
	IPAddress        *string    `json:"ip_address,omitempty" db:"ip_address"`
	ExpiresAt        time.Time  `json:"expires_at" db:"expires_at"`
	RevokedAt        *time.Time `json:"-" db:"revoked_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

func (s *Session) Valid(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
