// Package response writes the JSON envelopes shared by every API endpoint.
package response

import (
	"net/http"

	deliverycontext "prestadores/internal/delivery/context"
	domainerrors "prestadores/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message   string `json:"message"`          // User-facing message, in Portuguese.
	Code      string `json:"code"`             // Machine-readable code, e.g. "INVALID_CREDENTIALS".
	Details   any    `json:"details,omitempty"` // Field-level hints, only for 400.
	RequestID string `json:"request_id"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success writes a 2xx JSON body.
func Success(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are only useful, and safe, for malformed input.
	if statusCode != http.StatusBadRequest {
		details = nil
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// FromAppError writes the response for a domain error.
func FromAppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return FromAppError(c, appErr)
	}

	return errors.WithStack(err)
}
