package handler

import (
	"net/http"

	"prestadores/internal/delivery/api/response"
	"prestadores/internal/domain/entity"
	"prestadores/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const msgProvidersListed = "Prestadores listados com sucesso"

// ProviderHandler serves the provider listing.
type ProviderHandler struct {
	uc usecase.ProviderUsecase
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(uc usecase.ProviderUsecase) *ProviderHandler {
	return &ProviderHandler{uc: uc}
}

// List handles GET /prestadores?categoria=&emergencia=. Only the exact value "true"
// enables the emergency filter.
func (h *ProviderHandler) List(c echo.Context) error {
	filter := entity.ProviderFilter{
		Category:  c.QueryParam("categoria"),
		Emergency: c.QueryParam("emergencia") == "true",
	}

	output, err := h.uc.ListProviders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	data := make([]providerResponse, 0, len(output.Providers))
	for _, p := range output.Providers {
		data = append(data, newProviderResponse(p))
	}

	return response.Success(c, http.StatusOK, listProvidersResponse{
		Message: msgProvidersListed,
		Data:    data,
		Total:   output.Total,
	})
}
