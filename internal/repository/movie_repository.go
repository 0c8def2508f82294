package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

const movieColumns = `id, title, trailer, poster, description, release_date, rating, hot, now_showing, coming_soon`

// MovieRepo is a read-only view of the movies and banners tables. Lists
// come newest first.
type MovieRepo struct {
	db *sql.DB
}

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// GetByID returns ErrMovieNotFound when the movie does not exist.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	const op = "repository.MovieRepo.GetByID"

	m, err := scanMovie(r.db.QueryRowContext(ctx, "SELECT "+movieColumns+" FROM movies WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Movie{}, ErrMovieNotFound
	}
	if err != nil {
		return model.Movie{}, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// List returns every movie.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	const op = "repository.MovieRepo.List"

	out, err := r.query(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// ListPage returns one page of movies plus the total number of movies.
func (r *MovieRepo) ListPage(ctx context.Context, offset, limit int) ([]model.Movie, int, error) {
	const op = "repository.MovieRepo.ListPage"

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	if offset >= total {
		return []model.Movie{}, total, nil
	}
	out, err := r.query(ctx, "SELECT "+movieColumns+" FROM movies ORDER BY id DESC LIMIT ? OFFSET ?", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return out, total, nil
}

// ListReleasedBetween returns the movies whose release date lies in
// [from, to).
func (r *MovieRepo) ListReleasedBetween(ctx context.Context, from, to time.Time) ([]model.Movie, error) {
	const op = "repository.MovieRepo.ListReleasedBetween"

	const q = " FROM movies WHERE release_date >= ? AND release_date < ? ORDER BY id DESC"
	out, err := r.query(ctx, "SELECT "+movieColumns+q, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// ListBanners returns every banner.
func (r *MovieRepo) ListBanners(ctx context.Context) ([]model.Banner, error) {
	const op = "repository.MovieRepo.ListBanners"

	rows, err := r.db.QueryContext(ctx, "SELECT id, movie_id, image FROM banners ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []model.Banner{}
	for rows.Next() {
		var b model.Banner
		if err := rows.Scan(&b.ID, &b.MovieID, &b.Image); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (r *MovieRepo) query(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (model.Movie, error) {
	var (
		m       model.Movie
		desc    sql.NullString
		release sql.NullTime
	)
	if err := row.Scan(&m.ID, &m.Title, &m.Trailer, &m.Poster, &desc, &release, &m.Rating, &m.Hot, &m.NowShowing, &m.ComingSoon); err != nil {
		return model.Movie{}, err
	}
	m.Description = desc.String
	if release.Valid {
		t := release.Time
		m.ReleaseDate = &t
	}
	return m, nil
}
