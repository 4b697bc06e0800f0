package handler

import (
	"net/http"
	"strings"

	deliverycontext "prestadores/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

var (
	preflightMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	preflightHeaders = strings.Join([]string{echo.HeaderContentType, echo.HeaderAuthorization, deliverycontext.HeaderXRequestID}, ", ")
)

// HealthCheck reports liveness. It does not touch the database.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Preflight answers OPTIONS with 200. Browser requests carry Origin and get their
// headers from the CORS middleware; requests without Origin get the permissive set here.
func Preflight(c echo.Context) error {
	if c.Request().Header.Get(echo.HeaderOrigin) == "" {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowOrigin, "*")
		h.Set(echo.HeaderAccessControlAllowMethods, preflightMethods)
		h.Set(echo.HeaderAccessControlAllowHeaders, preflightHeaders)
	}

	return c.NoContent(http.StatusOK)
}
