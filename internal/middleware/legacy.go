package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
)

// HeaderLegacyToken guards the legacy compatibility routes.
const HeaderLegacyToken = "TokenCybersoft"

// LegacyToken rejects requests without a TokenCybersoft header. When expected
// is set the header must match it exactly.
func LegacyToken(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := strings.TrimSpace(c.Request().Header.Get(HeaderLegacyToken))
			if got == "" {
				return apperr.Unauthorized("TokenCybersoft header is required")
			}
			if expected != "" && subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				return apperr.Unauthorized("invalid TokenCybersoft")
			}
			return next(c)
		}
	}
}
