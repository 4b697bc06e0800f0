// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"prestadores/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a user. The provider fields
// are optional; when Category, Address or Description is set a provider profile is created too.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	CPF      string

	Category       string
	Address        string
	Description    string
	BusinessHours  string
	BasePrice      string
	Experience     string
	Certifications string
	Emergency24h   bool
}

// WantsProviderProfile reports whether any provider-identifying field was supplied.
func (in *RegisterInput) WantsProviderProfile() bool {
	return in.Category != "" || in.Address != "" || in.Description != ""
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUsecase defines registration, login and bearer-token authentication.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// Authenticate verifies the token and re-fetches its subject, so deleted users lose access.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
