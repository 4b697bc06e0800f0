// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"prestadores/internal/delivery/api/response"
	"prestadores/internal/delivery/api/validator"
	deliverycontext "prestadores/internal/delivery/context"
	domainerrors "prestadores/internal/domain/errors"
	"prestadores/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgUserCreated   = "Usuário criado com sucesso"
	msgLoginSuccess  = "Login realizado com sucesso"
	msgAuthenticated = "Usuário autenticado"
)

var (
	registerRules = []validator.Rule{
		{Tag: "required", Err: domainerrors.ErrRequiredFields},
		{Field: "senha", Tag: "min", Err: domainerrors.ErrPasswordTooShort},
	}

	loginRules = []validator.Rule{
		{Tag: "required", Err: domainerrors.ErrLoginFieldsRequired},
	}
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validator.Translate(err, registerRules...)
	}

	output, err := h.uc.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, registerResponse{
		Message: msgUserCreated,
		User:    newUserResponse(output.User),
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return validator.Translate(err, loginRules...)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Senha,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		Message:     msgLoginSuccess,
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
		User: loginUserResponse{
			ID:       output.User.ID,
			Nome:     output.User.Name,
			Email:    output.User.Email,
			CriadoEm: output.User.CreatedAt,
		},
	})
}

// Me handles GET /auth/me. It must run behind AuthMiddleware.Authenticate.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	isProvider := user.IsProvider()
	resp := newUserResponse(user)
	resp.Prestador = &isProvider

	return response.Success(c, http.StatusOK, meResponse{
		Message: msgAuthenticated,
		User:    resp,
	})
}

// bindError keeps non-400 binder failures (oversized body) and turns the rest into a validation error.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != http.StatusBadRequest {
		return errors.WithStack(err)
	}

	return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
}
