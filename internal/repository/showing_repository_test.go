package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

func TestShowingRepo_GetDetail(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	starts := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)
	mock.ExpectQuery(q("FROM showings sh")).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "movie_id", "theater_id", "starts_at", "ticket_price", "created_at",
			"title", "poster", "tname", "cname", "address",
		}).AddRow(1, 5, 7, starts, 75000.0, starts, "Dune", "dune.jpg", "Rap 1", "BHD Bitexco", "2 Hai Trieu"))

	d, err := NewShowingRepo(db).GetDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), d.TheaterID)
	assert.Equal(t, "Dune", d.MovieTitle)
	assert.Equal(t, starts, d.StartsAt)
}

func TestShowingRepo_GetDetail_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(q("FROM showings sh")).
		WithArgs(uint64(99999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = NewShowingRepo(db).GetDetail(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrShowingNotFound)
}

func TestShowingRepo_Create(t *testing.T) {
	t.Parallel()

	starts := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)

	t.Run("inserted", func(t *testing.T) {
		t.Parallel()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(q("INSERT INTO showings (movie_id, theater_id, starts_at, ticket_price) VALUES (?, ?, ?, ?)")).
			WithArgs(uint64(5), uint64(7), starts, 90000.0).
			WillReturnResult(sqlmock.NewResult(12, 1))
		mock.ExpectQuery(q("SELECT created_at FROM showings WHERE id = ?")).
			WithArgs(uint64(12)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(starts))

		s := &model.Showing{MovieID: 5, TheaterID: 7, StartsAt: starts, TicketPrice: 90000}
		require.NoError(t, NewShowingRepo(db).Create(context.Background(), s))
		assert.Equal(t, uint64(12), s.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate slot", func(t *testing.T) {
		t.Parallel()
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(q("INSERT INTO showings")).
			WillReturnError(&mysql.MySQLError{Number: 1062})

		err = NewShowingRepo(db).Create(context.Background(), &model.Showing{MovieID: 5, TheaterID: 7, StartsAt: starts, TicketPrice: 1})
		assert.ErrorIs(t, err, ErrShowingExists)
	})
}

func TestShowingRepo_ListByMovie(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	starts := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)
	cols := []string{
		"id", "movie_id", "theater_id", "starts_at", "ticket_price", "created_at",
		"tname", "cid", "cname", "address", "sid", "sname", "logo",
		"mid", "title", "trailer", "poster", "description", "release_date", "rating", "hot", "now_showing", "coming_soon",
	}
	mock.ExpectQuery(q("WHERE sh.movie_id = ? ORDER BY sh.starts_at ASC")).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 5, 7, starts, 75000.0, starts, "Rap 1", "bhd-bitexco", "BHD Bitexco", "2 Hai Trieu", "BHDStar", "BHD Star", "bhd.png",
				5, "Dune", "yt", "dune.jpg", nil, nil, 9, true, true, false))

	got, err := NewShowingRepo(db).ListByMovie(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BHDStar", got[0].SystemID)
	assert.Equal(t, "Dune", got[0].Movie.Title)
	assert.Nil(t, got[0].Movie.ReleaseDate)
	assert.Empty(t, got[0].Movie.Description)
}
