package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

// Context keys set by JWTAuth and OptionalJWT.
const (
	ctxUserID   = "user_id"
	ctxUsername = "username"
	ctxRole     = "role"
)

func setIdentity(c echo.Context, cl utils.Claims) {
	c.Set(ctxUserID, cl.UserID)
	c.Set(ctxUsername, cl.Username)
	c.Set(ctxRole, cl.Role)
}

// UserID returns the authenticated user id, false for anonymous requests.
func UserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(ctxUserID).(uint64)
	return id, ok && id > 0
}

// CurrentUser returns the identity carried by the access token. Only ID,
// Username and Role are set.
func CurrentUser(c echo.Context) (model.User, bool) {
	id, ok := UserID(c)
	if !ok {
		return model.User{}, false
	}
	name, _ := c.Get(ctxUsername).(string)
	role, _ := c.Get(ctxRole).(string)
	return model.User{ID: id, Username: name, Role: role}, true
}

// identityKey is the user part of rate limit keys; "anon" when unauthenticated.
func identityKey(c echo.Context) string {
	if id, ok := UserID(c); ok {
		return strconv.FormatUint(id, 10)
	}
	return "anon"
}
