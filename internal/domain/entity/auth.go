package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
