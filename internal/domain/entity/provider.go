package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is the service-offering profile owned by exactly one User.
type Provider struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Description    string
	Available      bool // "disponivel"; only available providers are listed.
	Emergency24h   bool // "atendimento24h"
	Address        *string
	BusinessHours  *string
	BasePrice      *string
	Experience     *string
	Certifications *string
	PhotoURL       *string
	Owner          *ProviderOwner // Owning user's public fields, loaded on listing.
	Services       []*Service
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProviderOwner is the public projection of the user that owns a provider profile.
type ProviderOwner struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
}

// Service is an offering of a provider, tagged with a category.
type Service struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description *string
	Price       *string
	Category    *Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category classifies services, e.g. "Encanador".
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// ProviderFilter narrows the provider listing.
type ProviderFilter struct {
	// Category matches category names by case-insensitive substring. Empty means no filter.
	Category string
	// Emergency restricts the listing to 24h providers and sorts them first.
	Emergency bool
}
