package repository

import (
	"context"

	"prestadores/internal/domain/entity"
)

// ProviderRepository defines persistence operations for provider profiles.
type ProviderRepository interface {
	// Create persists a provider profile linked to an existing user.
	Create(ctx context.Context, provider *entity.Provider) error

	// ListAvailable returns available providers matching the filter, with owner and
	// services loaded. Ordering: 24h providers first when filter.Emergency is set,
	// then by owner name ascending.
	ListAvailable(ctx context.Context, filter entity.ProviderFilter) ([]*entity.Provider, error)
}
