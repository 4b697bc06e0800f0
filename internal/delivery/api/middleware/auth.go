package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "prestadores/internal/delivery/context"
	domainerrors "prestadores/internal/domain/errors"
	"prestadores/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards routes that require a valid bearer token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, logger: logger}
}

// Authenticate resolves "Authorization: Bearer <token>" to a user and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrTokenMissing
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

// bearerToken extracts the token from an Authorization header. The scheme is case-sensitive.
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
