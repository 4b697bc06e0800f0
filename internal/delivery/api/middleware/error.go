package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"prestadores/internal/delivery/api/response"
	deliverycontext "prestadores/internal/delivery/context"
	domainerrors "prestadores/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	appErr := m.resolve(err)

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Int("status", appErr.HTTPCode()),
			slog.String("code", appErr.ErrorCode()),
			slog.String("details", appErr.Details()),
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	if respErr := response.FromAppError(c, appErr); respErr != nil {
		m.logger.Warn("Failed to write error response", slog.Any("error", respErr))
	}
}

// resolve maps any error to the AppError that decides status and body.
// A deadline anywhere in the chain wins over the wrapping error.
func (m *ErrorMiddleware) resolve(err error) domainerrors.AppError {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrServiceUnavailable
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	return domainerrors.ErrInternalError
}

func fromHTTPError(httpErr *echo.HTTPError) domainerrors.AppError {
	switch httpErr.Code {
	case http.StatusMethodNotAllowed:
		return domainerrors.ErrMethodNotAllowed
	case http.StatusNotFound:
		return domainerrors.ErrNotFound
	case http.StatusRequestEntityTooLarge:
		return domainerrors.ErrPayloadTooLarge
	case http.StatusServiceUnavailable:
		return domainerrors.ErrServiceUnavailable
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return domainerrors.ErrValidationFailed
	case http.StatusUnauthorized:
		return domainerrors.ErrTokenMissing
	}

	if httpErr.Code >= http.StatusBadRequest && httpErr.Code < http.StatusInternalServerError {
		msg, _ := httpErr.Message.(string)

		return domainerrors.NewBaseError(httpErr.Code, "HTTP_ERROR", msg, "")
	}

	return domainerrors.ErrInternalError
}
