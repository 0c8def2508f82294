// Package response writes the JSON envelope every API endpoint returns:
// {success, message, data, timestamp}. Errors flow through ErrorHandler so
// handlers can simply return them.
package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
)

type Envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      any                 `json:"data,omitempty"`
	Errors    []apperr.FieldError `json:"errors,omitempty"`
	Detail    string              `json:"detail,omitempty"`
	Timestamp string              `json:"timestamp"`
}

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

func stamp() string { return now().Format(time.RFC3339) }

func OK(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Timestamp: stamp()})
}

func Created(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data, Timestamp: stamp()})
}

// Render converts any error into a status code and an error envelope.
// Detail of unexpected failures is only included when exposeDetail is set.
func Render(err error, exposeDetail bool) (int, Envelope) {
	env := Envelope{Success: false, Timestamp: stamp()}

	var ae *apperr.Error
	if errors.As(err, &ae) {
		env.Message = ae.Message
		env.Errors = ae.Fields
		if exposeDetail && ae.Err != nil {
			env.Detail = ae.Err.Error()
		}
		return ae.Kind.HTTPStatus(), env
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case errors.Is(he, echo.ErrNotFound):
			env.Message = "route not found"
		case errors.Is(he, echo.ErrMethodNotAllowed):
			env.Message = "method not allowed"
		default:
			env.Message = fmt.Sprint(he.Message)
		}
		if exposeDetail && he.Internal != nil {
			env.Detail = he.Internal.Error()
		}
		return he.Code, env
	}

	env.Message = "internal server error"
	if exposeDetail {
		env.Detail = err.Error()
	}
	return http.StatusInternalServerError, env
}

// ErrorHandler returns an echo.HTTPErrorHandler that renders the envelope
// and logs server side failures.
func ErrorHandler(log *slog.Logger, exposeDetail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, env := Render(err, exposeDetail)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
				slog.Int("status", status),
				sl.Err(err),
			)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		if werr := c.JSON(status, env); werr != nil {
			log.Error("failed to write error response", sl.Err(werr))
		}
	}
}
