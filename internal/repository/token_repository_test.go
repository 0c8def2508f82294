package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepo_ValidateRefresh(t *testing.T) {
	t.Parallel()

	future := time.Now().UTC().Add(time.Hour)
	past := time.Now().UTC().Add(-time.Hour)

	cases := []struct {
		name    string
		rows    *sqlmock.Rows
		wantID  uint64
		wantErr error
	}{
		{"valid", sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).AddRow(42, future, nil), 42, nil},
		{"expired", sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).AddRow(42, past, nil), 0, ErrTokenNotFound},
		{"revoked", sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).AddRow(42, future, past), 0, ErrTokenNotFound},
		{"missing", sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}), 0, ErrTokenNotFound},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(q("FROM refresh_tokens WHERE token_hash=?")).WithArgs("h").WillReturnRows(tc.rows)

			id, err := NewTokenRepo(db).ValidateRefresh(context.Background(), "h")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestTokenRepo_RevokeByHash(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"active token", 1, nil},
		{"already redeemed", 0, ErrTokenNotFound},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(q("UPDATE refresh_tokens SET revoked_at=UTC_TIMESTAMP() WHERE token_hash=? AND revoked_at IS NULL")).
				WithArgs("h").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err = NewTokenRepo(db).RevokeByHash(context.Background(), "h")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTokenRepo_PurgeExpired(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(q("DELETE FROM refresh_tokens")).
		WithArgs(cutoff, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := NewTokenRepo(db).PurgeExpired(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(q("INSERT INTO users")).
		WillReturnError(mysqlDup())

	err = NewUserRepo(db).Create(context.Background(), userFixture())
	assert.ErrorIs(t, err, ErrUsernameExists)
}
