// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account behind every login. A user becomes a provider ("prestador")
// when a Provider profile is attached to it.
type User struct {
	ID           uuid.UUID // Primary key, generated by the database.
	Name         string    // Display name ("nome").
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt digest. Never leaves the service layer.
	Phone        *string   // Optional contact phone ("telefone").
	CPF          *string   // Optional national identifier.
	Provider     *Provider // Nil unless the user registered as a provider.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsProvider reports whether the user owns a provider profile.
func (u *User) IsProvider() bool {
	return u.Provider != nil
}
