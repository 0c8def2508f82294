package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request after it completes.
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	log = log.With(slog.String("component", "middleware/logger"))
	log.Info("logger middleware enabled")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			entry := log.With(
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("remote_addr", c.RealIP()),
				slog.String("user_agent", req.UserAgent()),
				slog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			)
			entry.Info("request completed",
				slog.Int("status", res.Status),
				slog.Int64("bytes", res.Size),
				slog.String("duration", time.Since(start).String()),
			)
			return nil
		}
	}
}
