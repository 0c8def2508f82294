package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/config"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserStore
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenStore
type TokenStore interface {
	StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uint64) error
}

// AuthService registers users and issues access/refresh token pairs.
type AuthService struct {
	log     *slog.Logger
	users   UserStore
	tokens  TokenStore
	cfg     config.Auth
	timeout time.Duration
}

func NewAuthService(log *slog.Logger, users UserStore, tokens TokenStore, cfg config.Auth, timeout time.Duration) *AuthService {
	return &AuthService{log: log, users: users, tokens: tokens, cfg: cfg, timeout: timeout}
}

// RegisterInput is a validated sign-up request.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
	Phone    string
}

// Session is the result of a login or a refresh.
type Session struct {
	User    model.User
	Access  utils.AccessToken
	Refresh utils.RefreshToken
}

func (s *AuthService) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Register creates a customer account. Self-registration never grants the
// admin role.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	const op = "service.AuthService.Register"
	log := s.log.With(slog.String("op", op))

	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return model.User{}, apperr.Validation("username and password are required")
	}

	hash, err := utils.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return model.User{}, apperr.Internal(err)
	}

	ctx, cancel := s.ctx(ctx)
	defer cancel()

	u := model.User{
		Username:     in.Username,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        in.Email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         model.RoleCustomer,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return model.User{}, apperr.Conflict("username already exists")
		}
		log.Error("failed to create user", sl.Err(err))
		return model.User{}, apperr.FromStore(err)
	}

	log.Info("user registered", slog.Uint64("user_id", u.ID))
	return s.reload(ctx, u)
}

// reload returns the stored row so timestamps are populated. The created
// value is returned when the read fails.
func (s *AuthService) reload(ctx context.Context, u model.User) (model.User, error) {
	stored, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return u, nil
	}
	return stored, nil
}

// Login verifies credentials and returns a fresh token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repository.ErrUserNotFound) {
		return Session{}, apperr.Unauthorized("invalid credentials")
	}
	if err != nil {
		return Session{}, apperr.FromStore(err)
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return Session{}, apperr.Unauthorized("invalid credentials")
	}
	return s.issue(ctx, u)
}

// Refresh validates a refresh token, revokes it and issues a new pair.
func (s *AuthService) Refresh(ctx context.Context, raw string) (Session, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Session{}, apperr.Validation("refresh token is required",
			apperr.FieldError{Field: "refreshToken", Message: "is required"})
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	hash := utils.HashRefreshRaw(raw)
	userID, err := s.tokens.ValidateRefresh(ctx, hash)
	if errors.Is(err, repository.ErrTokenNotFound) {
		return Session{}, apperr.Unauthorized("invalid refresh token")
	}
	if err != nil {
		return Session{}, apperr.FromStore(err)
	}
	// the revoke is the redemption; a concurrent refresh with the same
	// token loses here
	if err := s.tokens.RevokeByHash(ctx, hash); err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return Session{}, apperr.Unauthorized("invalid refresh token")
		}
		return Session{}, apperr.FromStore(err)
	}

	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return Session{}, apperr.Unauthorized("invalid refresh token")
	}
	if err != nil {
		return Session{}, apperr.FromStore(err)
	}
	return s.issue(ctx, u)
}

func (s *AuthService) issue(ctx context.Context, u model.User) (Session, error) {
	access, err := utils.NewAccessToken(s.cfg.JWTSecret, u.ID, u.Username, u.Role, s.cfg.AccessTTLMin)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	refresh, err := utils.NewRefreshToken(s.cfg.RefreshTTLDays)
	if err != nil {
		return Session{}, apperr.Internal(err)
	}
	if err := s.tokens.StoreRefresh(ctx, u.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return Session{}, apperr.FromStore(err)
	}
	return Session{User: u, Access: access, Refresh: refresh}, nil
}

// Logout revokes one refresh token when raw is given, otherwise every
// token of userID.
func (s *AuthService) Logout(ctx context.Context, raw string, userID uint64) error {
	raw = strings.TrimSpace(raw)
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	switch {
	case raw != "":
		hash := utils.HashRefreshRaw(raw)
		if _, err := s.tokens.ValidateRefresh(ctx, hash); err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return apperr.Unauthorized("invalid refresh token")
			}
			return apperr.FromStore(err)
		}
		if err := s.tokens.RevokeByHash(ctx, hash); err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return apperr.Unauthorized("invalid refresh token")
			}
			return apperr.FromStore(err)
		}
		return nil
	case userID > 0:
		if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
			return apperr.FromStore(err)
		}
		return nil
	default:
		return apperr.Validation("provide Authorization header or refreshToken")
	}
}

// Account returns the profile of a user.
func (s *AuthService) Account(ctx context.Context, userID uint64) (model.User, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, apperr.NotFound("user not found")
	}
	if err != nil {
		return model.User{}, apperr.FromStore(err)
	}
	return u, nil
}

// EnsureAdmin creates the bootstrap administrator when it does not exist
// yet. It is a no-op when username or password is empty.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	const op = "service.AuthService.EnsureAdmin"

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	u := model.User{Username: username, PasswordHash: hash, FullName: "Administrator", Email: username + "@localhost", Role: model.RoleAdmin}
	if err := s.users.Create(ctx, &u); err != nil && !errors.Is(err, repository.ErrUsernameExists) {
		return err
	}
	s.log.Info("bootstrap admin ensured", slog.String("op", op), slog.String("username", username))
	return nil
}
