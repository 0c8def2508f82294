package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticketing/internal/lib/logger/handlers/slogdiscard"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/response"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

const testSecret = "handler-secret"

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = response.ErrorHandler(slogdiscard.NewDiscardLogger(), false)
	return e
}

var jwtAuth = middleware.JWTAuth(testSecret)

func bearerFor(t *testing.T, id uint64, role string) string {
	t.Helper()
	at, err := utils.NewAccessToken(testSecret, id, "alice", role, 5)
	require.NoError(t, err)
	return "Bearer " + at.Token
}

type call struct {
	method string
	path   string
	body   string
	auth   string
}

func serve(e *echo.Echo, c call) *httptest.ResponseRecorder {
	var req *http.Request
	if c.body != "" {
		req = httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(c.method, c.path, nil)
	}
	if c.auth != "" {
		req.Header.Set(echo.HeaderAuthorization, c.auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// envelope is the decoded response with data left raw.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func fields(env envelope) []string {
	out := make([]string, 0, len(env.Errors))
	for _, f := range env.Errors {
		out = append(out, f.Field)
	}
	return out
}

func renderForTest(err error) (int, response.Envelope) {
	return response.Render(err, false)
}
