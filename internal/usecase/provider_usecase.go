package usecase

import (
	"context"

	"prestadores/internal/domain/entity"
)

// ListProvidersOutput is the filtered, ordered provider listing.
type ListProvidersOutput struct {
	Providers []*entity.Provider
	Total     int
}

// ProviderUsecase defines read operations over provider profiles.
type ProviderUsecase interface {
	ListProviders(ctx context.Context, filter entity.ProviderFilter) (*ListProvidersOutput, error)
}
