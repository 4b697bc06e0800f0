package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"prestadores/config"
	"prestadores/internal/delivery"
	apimiddleware "prestadores/internal/delivery/api/middleware"
	"prestadores/internal/delivery/api/router"
	"prestadores/internal/delivery/api/validator"
	deliverycontext "prestadores/internal/delivery/context"
	"prestadores/internal/delivery/middleware"
	"prestadores/internal/domain/lifecycle"
	"prestadores/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Cfg, params.Logger, router.NewRouter(params.RouterParams))

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// RouteRegistrar adds routes to an echo instance.
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// NewEcho builds the echo instance with the full middleware chain and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, routes RouteRegistrar) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// CORS runs before routing so preflights get headers on every path.
	echoServer.Pre(echo.WrapMiddleware(newCORS(cfg.HTTP.CORS).Handler))

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// 5. Request deadline, propagated to the database through the request context
	echoServer.Use(echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
		Timeout: cfg.HTTP.RequestTimeout,
	}))

	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	routes.RegisterRoutes(echoServer)

	return echoServer
}

func newCORS(cfg config.CORSConfig) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:     cfg.AllowedOrigins,
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, deliverycontext.HeaderXRequestID},
		ExposedHeaders:     []string{deliverycontext.HeaderXRequestID},
		OptionsPassthrough: true,
	})
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
