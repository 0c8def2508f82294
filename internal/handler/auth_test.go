package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/handler/mocks"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/handlers/slogdiscard"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/service"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

func authServer(t *testing.T) (*mocks.Authenticator, func(call) *envelopeRec) {
	t.Helper()
	m := mocks.NewAuthenticator(t)
	h := NewAuthHandler(slogdiscard.NewDiscardLogger(), m)

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.Refresh)
	e.POST("/auth/logout", h.Logout, middleware.OptionalJWT(testSecret))
	e.GET("/auth/me", h.Account, jwtAuth)

	return m, func(c call) *envelopeRec {
		rec := serve(e, c)
		return &envelopeRec{code: rec.Code, env: decode(t, rec)}
	}
}

type envelopeRec struct {
	code int
	env  envelope
}

var alice = model.User{ID: 42, Username: "alice", FullName: "Alice", Email: "alice@example.com", Phone: "0901234567", Role: model.RoleCustomer}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	m, do := authServer(t)
	m.On("Register", mock.Anything, service.RegisterInput{
		Username: "alice", Password: "secret1", FullName: "Alice", Email: "alice@example.com", Phone: "0901234567",
	}).Return(alice, nil).Once()

	res := do(call{method: http.MethodPost, path: "/auth/register", body: `{
		"taiKhoan":"alice","matKhau":"secret1","hoTen":"Alice",
		"email":"alice@example.com","soDT":"0901234567","loaiNguoiDung":"QuanTri"}`})

	require.Equal(t, http.StatusCreated, res.code)
	var u userResponse
	require.NoError(t, json.Unmarshal(res.env.Data, &u))
	assert.Equal(t, "alice", u.TaiKhoan)
	assert.Equal(t, model.RoleCustomer, u.LoaiNguoiDung)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "short username", body: `{"taiKhoan":"al","matKhau":"secret1","hoTen":"A","email":"a@b.co","soDT":"0901234567"}`, field: "taiKhoan"},
		{name: "short password", body: `{"taiKhoan":"alice","matKhau":"123","hoTen":"A","email":"a@b.co","soDT":"0901234567"}`, field: "matKhau"},
		{name: "bad email", body: `{"taiKhoan":"alice","matKhau":"secret1","hoTen":"A","email":"nope","soDT":"0901234567"}`, field: "email"},
		{name: "phone letters", body: `{"taiKhoan":"alice","matKhau":"secret1","hoTen":"A","email":"a@b.co","soDT":"09012345ab"}`, field: "soDT"},
		{name: "phone too short", body: `{"taiKhoan":"alice","matKhau":"secret1","hoTen":"A","email":"a@b.co","soDT":"090123"}`, field: "soDT"},
		{name: "unknown role", body: `{"taiKhoan":"alice","matKhau":"secret1","hoTen":"A","email":"a@b.co","soDT":"0901234567","loaiNguoiDung":"Boss"}`, field: "loaiNguoiDung"},
		{name: "malformed json", body: `{"taiKhoan":`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, do := authServer(t)

			res := do(call{method: http.MethodPost, path: "/auth/register", body: tt.body})
			assert.Equal(t, http.StatusBadRequest, res.code)
			assert.False(t, res.env.Success)
			if tt.field != "" {
				assert.Contains(t, fields(res.env), tt.field)
			}
		})
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	t.Parallel()

	m, do := authServer(t)
	m.On("Register", mock.Anything, mock.Anything).Return(model.User{}, apperr.Conflict("username already exists")).Once()

	res := do(call{method: http.MethodPost, path: "/auth/register",
		body: `{"taiKhoan":"alice","matKhau":"secret1","hoTen":"A","email":"a@b.co","soDT":"0901234567"}`})
	assert.Equal(t, http.StatusConflict, res.code)
	assert.Equal(t, "username already exists", res.env.Message)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	exp := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	session := service.Session{
		User:    alice,
		Access:  utils.AccessToken{Token: "access", Exp: exp},
		Refresh: utils.RefreshToken{Raw: "refresh", Exp: exp.Add(time.Hour)},
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		m, do := authServer(t)
		m.On("Login", mock.Anything, "alice", "secret1").Return(session, nil).Once()

		res := do(call{method: http.MethodPost, path: "/auth/login", body: `{"taiKhoan":"alice","matKhau":"secret1"}`})
		require.Equal(t, http.StatusOK, res.code)

		var s sessionResponse
		require.NoError(t, json.Unmarshal(res.env.Data, &s))
		assert.Equal(t, "access", s.AccessToken)
		assert.Equal(t, "refresh", s.RefreshToken)
		assert.Equal(t, "alice", s.User.TaiKhoan)
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()
		m, do := authServer(t)
		m.On("Login", mock.Anything, "alice", "wrong-1").Return(service.Session{}, apperr.Unauthorized("invalid credentials")).Once()

		res := do(call{method: http.MethodPost, path: "/auth/login", body: `{"taiKhoan":"alice","matKhau":"wrong-1"}`})
		assert.Equal(t, http.StatusUnauthorized, res.code)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		_, do := authServer(t)
		res := do(call{method: http.MethodPost, path: "/auth/login", body: `{}`})
		assert.Equal(t, http.StatusBadRequest, res.code)
		assert.ElementsMatch(t, []string{"taiKhoan", "matKhau"}, fields(res.env))
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Parallel()

	_, do := authServer(t)
	res := do(call{method: http.MethodPost, path: "/auth/refresh", body: `{}`})
	assert.Equal(t, http.StatusBadRequest, res.code)

	m, do2 := authServer(t)
	m.On("Refresh", mock.Anything, "raw").Return(service.Session{User: alice}, nil).Once()
	res = do2(call{method: http.MethodPost, path: "/auth/refresh", body: `{"refreshToken":"raw"}`})
	assert.Equal(t, http.StatusOK, res.code)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()

	t.Run("bearer without body revokes all", func(t *testing.T) {
		t.Parallel()
		m, do := authServer(t)
		m.On("Logout", mock.Anything, "", uint64(42)).Return(nil).Once()

		res := do(call{method: http.MethodPost, path: "/auth/logout", auth: bearerFor(t, 42, model.RoleCustomer)})
		assert.Equal(t, http.StatusOK, res.code)
	})

	t.Run("refresh token without bearer", func(t *testing.T) {
		t.Parallel()
		m, do := authServer(t)
		m.On("Logout", mock.Anything, "raw", uint64(0)).Return(nil).Once()

		res := do(call{method: http.MethodPost, path: "/auth/logout", body: `{"refreshToken":"raw"}`})
		assert.Equal(t, http.StatusOK, res.code)
	})

	t.Run("nothing given", func(t *testing.T) {
		t.Parallel()
		m, do := authServer(t)
		m.On("Logout", mock.Anything, "", uint64(0)).Return(apperr.Validation("provide Authorization header or refreshToken")).Once()

		res := do(call{method: http.MethodPost, path: "/auth/logout"})
		assert.Equal(t, http.StatusBadRequest, res.code)
	})
}

func TestAuthHandler_Account(t *testing.T) {
	t.Parallel()

	m, do := authServer(t)
	res := do(call{method: http.MethodGet, path: "/auth/me"})
	assert.Equal(t, http.StatusUnauthorized, res.code)

	m.On("Account", mock.MatchedBy(func(context.Context) bool { return true }), uint64(42)).Return(alice, nil).Once()
	res = do(call{method: http.MethodGet, path: "/auth/me", auth: bearerFor(t, 42, model.RoleCustomer)})
	require.Equal(t, http.StatusOK, res.code)

	var u userResponse
	require.NoError(t, json.Unmarshal(res.env.Data, &u))
	assert.Equal(t, uint64(42), u.MaNguoiDung)
	assert.Equal(t, "0901234567", u.SoDT)
}
