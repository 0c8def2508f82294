package handler

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/response"
	"github.com/iliyamo/movie-ticketing/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Register(ctx context.Context, in service.RegisterInput) (model.User, error)
	Login(ctx context.Context, username, password string) (service.Session, error)
	Refresh(ctx context.Context, raw string) (service.Session, error)
	Logout(ctx context.Context, raw string, userID uint64) error
	Account(ctx context.Context, userID uint64) (model.User, error)
}

// AuthHandler serves sign-up, sign-in, token rotation and account info.
type AuthHandler struct {
	log  *slog.Logger
	auth Authenticator
}

func NewAuthHandler(log *slog.Logger, auth Authenticator) *AuthHandler {
	return &AuthHandler{log: log, auth: auth}
}

// Register creates a customer account and returns its profile. No tokens
// are issued; the client logs in afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	const op = "handler.AuthHandler.Register"

	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.auth.Register(c.Request().Context(), service.RegisterInput{
		Username: req.TaiKhoan,
		Password: req.MatKhau,
		FullName: req.HoTen,
		Email:    req.Email,
		Phone:    req.SoDT,
	})
	if err != nil {
		return err
	}
	h.log.Debug("registered", slog.String("op", op), slog.String("username", u.Username))
	return response.Created(c, "registration successful", toUser(u))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	s, err := h.auth.Login(c.Request().Context(), req.TaiKhoan, req.MatKhau)
	if err != nil {
		return err
	}
	return response.OK(c, "login successful", toSession(s))
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	s, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return response.OK(c, "token refreshed", toSession(s))
}

// Logout revokes the refresh token in the body, or every refresh token of
// the bearer when the body has none.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	uid, _ := middleware.UserID(c)
	if err := h.auth.Logout(c.Request().Context(), req.RefreshToken, uid); err != nil {
		return err
	}
	return response.OK(c, "logged out", nil)
}

func (h *AuthHandler) Account(c echo.Context) error {
	me, err := currentUser(c)
	if err != nil {
		return err
	}
	u, err := h.auth.Account(c.Request().Context(), me.ID)
	if err != nil {
		return err
	}
	return response.OK(c, "account retrieved", toUser(u))
}
