package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHandler_Status(t *testing.T) {
	t.Parallel()

	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }
	info := Info{Name: "Movie Ticketing API", Version: "1.0.0", Env: "local", APIPrefix: "/api/v1"}

	tests := []struct {
		name   string
		probes []Probe
		status int
		want   map[string]string
	}{
		{
			name:   "all up",
			probes: []Probe{{Name: "database", Ping: up, Required: true}, {Name: "redis", Ping: up}},
			status: http.StatusOK,
			want:   map[string]string{"database": "up", "redis": "up"},
		},
		{
			name:   "optional down",
			probes: []Probe{{Name: "database", Ping: up, Required: true}, {Name: "broker", Ping: down}},
			status: http.StatusOK,
			want:   map[string]string{"database": "up", "broker": "down"},
		},
		{
			name:   "database down",
			probes: []Probe{{Name: "database", Ping: down, Required: true}},
			status: http.StatusServiceUnavailable,
			want:   map[string]string{"database": "down"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewRootHandler(info, tt.probes...)
			e := newTestEcho()
			e.GET("/status", h.Status)

			rec := serve(e, call{method: http.MethodGet, path: "/status"})
			require.Equal(t, tt.status, rec.Code)

			var data struct {
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
			assert.Equal(t, tt.want, data.Checks)
		})
	}
}

func TestRootHandler_Endpoints(t *testing.T) {
	t.Parallel()

	h := NewRootHandler(Info{Name: "Movie Ticketing API", Version: "1.0.0", Env: "local", APIPrefix: "/api/v1"})
	e := newTestEcho()
	e.GET("/", h.Banner)
	e.GET("/health", h.Health)
	e.GET("/info", h.Info)
	e.GET("/ping", h.Ping)

	for _, path := range []string{"/", "/health", "/info", "/ping"} {
		rec := serve(e, call{method: http.MethodGet, path: path})
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.True(t, decode(t, rec).Success, path)
	}
	assert.Contains(t, serve(e, call{method: http.MethodGet, path: "/"}).Body.String(), "/api/v1/bookings")

	missing := serve(e, call{method: http.MethodGet, path: "/nope"})
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "route not found", decode(t, missing).Message)
}

func TestValidator_FieldPaths(t *testing.T) {
	t.Parallel()

	err := NewValidator().Validate(&bookingRequest{
		MaLichChieu: 1,
		DanhSachVe:  []ticketRequest{{MaGhe: 1, GiaVe: 1}, {MaGhe: 0, GiaVe: 2}},
	})
	require.Error(t, err)

	status, env := renderForTest(err)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "danhSachVe[1].maGhe", env.Errors[0].Field)
	assert.Equal(t, "is required", env.Errors[0].Message)

	assert.NoError(t, NewValidator().Validate(&logoutRequest{}))
}
