package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "prestadores/internal/delivery/context"
	"prestadores/internal/domain/entity"
	"prestadores/internal/domain/repository"
	"prestadores/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type providerService struct {
	providerRepo repository.ProviderRepository
	logger       *slog.Logger
}

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	Logger       *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		providerRepo: params.ProviderRepo,
		logger:       params.Logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProviders returns available providers. An empty result is not an error.
func (srv *providerService) ListProviders(ctx context.Context, filter entity.ProviderFilter) (*usecase.ListProvidersOutput, error) {
	filter.Category = strings.TrimSpace(filter.Category)

	providers, err := srv.providerRepo.ListAvailable(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list providers",
			slog.String("category", filter.Category),
			slog.Bool("emergency", filter.Emergency),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to list providers")
	}

	if providers == nil {
		providers = []*entity.Provider{}
	}

	srv.log(ctx).Debug("Providers listed", slog.Int("total", len(providers)))

	return &usecase.ListProvidersOutput{
		Providers: providers,
		Total:     len(providers),
	}, nil
}
