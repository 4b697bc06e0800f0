// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"prestadores/internal/delivery/api/middleware"
	"prestadores/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProviderHandler *handler.ProviderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	providerHandler *handler.ProviderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		providerHandler: params.ProviderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Every path also answers OPTIONS with 200; other unregistered methods get 405.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	e.GET("/prestadores", r.providerHandler.List, r.authMiddleware.Authenticate)

	for _, path := range []string{"/health", "/auth/register", "/auth/login", "/auth/me", "/prestadores"} {
		e.Add(http.MethodOptions, path, handler.Preflight)
	}
}
