package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
)

// Source reads a single request value. The modern routes take ids from
// the path, the legacy ones mostly from the query string.
type Source struct {
	Name string
	read func(c echo.Context) string
}

func FromParam(name string) Source {
	return Source{Name: name, read: func(c echo.Context) string { return c.Param(name) }}
}

func FromQuery(name string) Source {
	return Source{Name: name, read: func(c echo.Context) string { return c.QueryParam(name) }}
}

// FirstOf tries each source in order and returns the first non-empty value.
func FirstOf(srcs ...Source) Source {
	return Source{Name: srcs[0].Name, read: func(c echo.Context) string {
		for _, s := range srcs {
			if v := strings.TrimSpace(s.read(c)); v != "" {
				return v
			}
		}
		return ""
	}}
}

func (s Source) value(c echo.Context) string { return strings.TrimSpace(s.read(c)) }

// id parses a positive integer identifier.
func (s Source) id(c echo.Context) (uint64, error) {
	raw := s.value(c)
	if raw == "" {
		return 0, apperr.Validation(s.Name+" is required", apperr.FieldError{Field: s.Name, Message: "is required"})
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.Validation(s.Name+" must be a positive integer",
			apperr.FieldError{Field: s.Name, Message: "must be a positive integer"})
	}
	return n, nil
}

// text returns a required string value.
func (s Source) text(c echo.Context) (string, error) {
	v := s.value(c)
	if v == "" {
		return "", apperr.Validation(s.Name+" is required", apperr.FieldError{Field: s.Name, Message: "is required"})
	}
	return v, nil
}

// intOr parses an integer, falling back to def when the value is absent.
func (s Source) intOr(c echo.Context, def int) (int, error) {
	raw := s.value(c)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation(s.Name+" must be an integer",
			apperr.FieldError{Field: s.Name, Message: "must be an integer"})
	}
	return n, nil
}

// date parses a required YYYY-MM-DD (UTC) or RFC 3339 value.
func (s Source) date(c echo.Context) (time.Time, error) {
	raw, err := s.text(c)
	if err != nil {
		return time.Time{}, err
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperr.Validation(s.Name+" must be a date (YYYY-MM-DD)",
			apperr.FieldError{Field: s.Name, Message: "must be a date (YYYY-MM-DD)"})
	}
	return t, nil
}

// bindAndValidate decodes the body into dst and runs the validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return apperr.Validation("malformed request body").Wrap(err)
	}
	return c.Validate(dst)
}

func currentUser(c echo.Context) (model.User, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return model.User{}, apperr.Unauthorized("authentication required")
	}
	return u, nil
}
