package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id, username, password_hash, full_name, email, phone, role, created_at, updated_at"

// Create inserts u (PasswordHash must already be set) and fills in its id.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const op = "repository.UserRepo.Create"

	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, full_name, email, phone, role) VALUES (?,?,?,?,?,?)",
		u.Username, u.PasswordHash, u.FullName, u.Email, u.Phone, u.Role)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrUsernameExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	u.ID = uint64(id)
	return nil
}

// GetByUsername fetches a user by its login name.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	const op = "repository.UserRepo.GetByUsername"

	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1", strings.TrimSpace(username)))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	const op = "repository.UserRepo.GetByID"

	u, err := scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
