package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/response"
)

// Probe checks one dependency for /status.
type Probe struct {
	Name string
	Ping func(ctx context.Context) error
	// Required probes turn /status into a 503 when they fail.
	Required bool
}

// Info describes the running service.
type Info struct {
	Name      string
	Version   string
	Env       string
	APIPrefix string
}

// RootHandler serves the unversioned service endpoints.
type RootHandler struct {
	info    Info
	probes  []Probe
	started time.Time
}

func NewRootHandler(info Info, probes ...Probe) *RootHandler {
	return &RootHandler{info: info, probes: probes, started: time.Now()}
}

func (h *RootHandler) uptime() float64 {
	return time.Since(h.started).Round(time.Millisecond).Seconds()
}

func (h *RootHandler) Banner(c echo.Context) error {
	p := h.info.APIPrefix
	return response.OK(c, "Welcome to "+h.info.Name, map[string]any{
		"version": h.info.Version,
		"status":  "running",
		"endpoints": map[string]string{
			"auth":     p + "/auth",
			"movies":   p + "/movies",
			"banners":  p + "/banners",
			"cinemas":  p + "/cinemas",
			"bookings": p + "/bookings",
			"legacy":   "/api",
		},
	})
}

// Health reports liveness only; it never touches dependencies.
func (h *RootHandler) Health(c echo.Context) error {
	return response.OK(c, h.info.Name+" is running", map[string]any{
		"status":      "OK",
		"version":     h.info.Version,
		"uptime":      h.uptime(),
		"environment": h.info.Env,
	})
}

// Status pings every probe with a short timeout.
func (h *RootHandler) Status(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.probes))
	healthy := true
	for _, p := range h.probes {
		if err := p.Ping(ctx); err != nil {
			checks[p.Name] = "down"
			if p.Required {
				healthy = false
			}
			continue
		}
		checks[p.Name] = "up"
	}

	data := map[string]any{
		"status":      "healthy",
		"version":     h.info.Version,
		"environment": h.info.Env,
		"uptime":      h.uptime(),
		"checks":      checks,
	}
	if !healthy {
		data["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response.Envelope{
			Success:   false,
			Message:   "one or more dependencies are unavailable",
			Data:      data,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	return response.OK(c, "service status", data)
}

func (h *RootHandler) Info(c echo.Context) error {
	return response.OK(c, "service information", map[string]any{
		"name":        h.info.Name,
		"version":     h.info.Version,
		"environment": h.info.Env,
		"apiPrefix":   h.info.APIPrefix,
		"features":    []string{"authentication", "cinema catalog", "seat booking", "ticket QR codes", "booking notifications"},
	})
}

func (h *RootHandler) Ping(c echo.Context) error {
	return response.OK(c, "pong", nil)
}
