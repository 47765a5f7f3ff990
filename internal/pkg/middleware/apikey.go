package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// APIKeyHeader is the header carrying the service API key
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey validates the API key for service-to-service calls.
// Keys are injected from config rather than read from process globals so
// the middleware carries no mutable package state.
func ValidateAPIKey(allowedKeys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, key := range allowedKeys {
				if key != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					validKey = true
					break
				}
			}

			if !validKey {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
