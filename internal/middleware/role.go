package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
)

// RequireRole lets the request through only when the role claim stored by
// JWTAuth is one of roles. It must run after JWTAuth.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserID(c); !ok {
				return apperr.Unauthorized("authentication required")
			}
			role, _ := c.Get(ctxRole).(string)
			if !allowed[role] {
				return apperr.Forbidden("insufficient permissions")
			}
			return next(c)
		}
	}
}
