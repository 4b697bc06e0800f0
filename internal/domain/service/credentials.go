// Package service defines interfaces for stateless domain logic that the use cases
// depend on but that belongs to infrastructure: hashing and token signing.
package service

import (
	"time"

	"prestadores/internal/domain/entity"
)

// PasswordHasher turns plaintext passwords into salted one-way digests.
type PasswordHasher interface {
	// Hash returns the digest to store for a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest never matches.
	Check(password, digest string) bool
}

// TokenService issues and verifies the bearer tokens used by protected endpoints.
type TokenService interface {
	// Issue signs a token for the user. The token embeds the user's ID as subject,
	// email and name, and expires after TTL.
	Issue(user *entity.User) (token string, expiresAt time.Time, err error)

	// Verify validates signature and expiry and returns the embedded claims.
	// Every failure is reported as errors.ErrTokenInvalid.
	Verify(token string) (*entity.TokenClaims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
