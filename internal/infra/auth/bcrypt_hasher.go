// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"prestadores/config"
	"prestadores/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost is the work factor used when none is configured.
	DefaultBcryptCost = 12

	// maxPasswordBytes is the longest input bcrypt reads. Longer passwords are
	// truncated to this many bytes, matching hashes produced by other bcrypt libraries.
	maxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher from config, falling back to DefaultBcryptCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := DefaultBcryptCost
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost returns a hasher with an explicit work factor.
// Costs outside bcrypt's accepted range are replaced by DefaultBcryptCost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(passwordBytes(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password)) == nil
}

// passwordBytes returns the part of password that bcrypt hashes. The cut is
// byte-based and may split a multibyte rune; Hash and Check cut identically.
func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}

	return b
}
