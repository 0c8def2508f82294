package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

func bearer(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return raw, raw != ""
}

// JWTAuth requires a valid Bearer access token and stores its subject,
// username and role on the context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearer(c)
			if !ok {
				return apperr.Unauthorized("missing bearer token")
			}
			cl, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return apperr.Unauthorized("invalid or expired token")
			}
			setIdentity(c, cl)
			return next(c)
		}
	}
}

// OptionalJWT is like JWTAuth but lets requests without a usable token
// through as anonymous.
func OptionalJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw, ok := bearer(c); ok {
				if cl, err := utils.ParseAccessToken(secret, raw); err == nil {
					setIdentity(c, cl)
				}
			}
			return next(c)
		}
	}
}
