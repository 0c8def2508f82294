package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// ShowingRepo provides lookups and creation of showings.
type ShowingRepo struct {
	db *sql.DB
}

// NewShowingRepo returns a new ShowingRepo bound to the given database.
func NewShowingRepo(db *sql.DB) *ShowingRepo { return &ShowingRepo{db: db} }

// GetDetail loads a showing together with its movie, theater and cluster.
// It returns ErrShowingNotFound when no showing has the given id.
func (r *ShowingRepo) GetDetail(ctx context.Context, id uint64) (model.ShowingDetail, error) {
	const op = "repository.ShowingRepo.GetDetail"

	const q = `SELECT sh.id, sh.movie_id, sh.theater_id, sh.starts_at, sh.ticket_price, sh.created_at,
	                  m.title, m.poster, t.name, c.name, c.address
	           FROM showings sh
	           JOIN movies m ON m.id = sh.movie_id
	           JOIN theaters t ON t.id = sh.theater_id
	           JOIN cinema_clusters c ON c.id = t.cluster_id
	           WHERE sh.id = ?`
	var d model.ShowingDetail
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.MovieID, &d.TheaterID, &d.StartsAt, &d.TicketPrice, &d.CreatedAt,
		&d.MovieTitle, &d.MoviePoster, &d.TheaterName, &d.ClusterName, &d.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ShowingDetail{}, ErrShowingNotFound
	}
	if err != nil {
		return model.ShowingDetail{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

// ExistsAt reports whether the theater already has a showing starting at
// the given instant.
func (r *ShowingRepo) ExistsAt(ctx context.Context, theaterID uint64, startsAt time.Time) (bool, error) {
	const op = "repository.ShowingRepo.ExistsAt"

	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM showings WHERE theater_id = ? AND starts_at = ? LIMIT 1",
		theaterID, startsAt.UTC()).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Create inserts a showing and fills in its generated id and created_at.
// A second showing for the same theater and start time yields
// ErrShowingExists.
func (r *ShowingRepo) Create(ctx context.Context, s *model.Showing) error {
	const op = "repository.ShowingRepo.Create"

	s.StartsAt = s.StartsAt.UTC()
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO showings (movie_id, theater_id, starts_at, ticket_price) VALUES (?, ?, ?, ?)",
		s.MovieID, s.TheaterID, s.StartsAt, s.TicketPrice)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrShowingExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.ID = uint64(id)

	// Query back created_at which is filled in by the database.
	if err := r.db.QueryRowContext(ctx, "SELECT created_at FROM showings WHERE id = ?", s.ID).Scan(&s.CreatedAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

const listingSelect = `SELECT sh.id, sh.movie_id, sh.theater_id, sh.starts_at, sh.ticket_price, sh.created_at,
       t.name, c.id, c.name, c.address, s.id, s.name, s.logo,
       m.id, m.title, m.trailer, m.poster, m.description, m.release_date, m.rating, m.hot, m.now_showing, m.coming_soon
FROM showings sh
JOIN movies m ON m.id = sh.movie_id
JOIN theaters t ON t.id = sh.theater_id
JOIN cinema_clusters c ON c.id = t.cluster_id
JOIN cinema_systems s ON s.id = c.system_id
`

// ListBySystem returns every showing screened in one cinema system ordered
// by start time.
func (r *ShowingRepo) ListBySystem(ctx context.Context, systemID string) ([]model.ShowingListing, error) {
	const op = "repository.ShowingRepo.ListBySystem"

	out, err := r.listings(ctx, listingSelect+"WHERE s.id = ? ORDER BY sh.starts_at ASC, sh.id ASC", systemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// ListByMovie returns every showing of one movie ordered by start time.
func (r *ShowingRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.ShowingListing, error) {
	const op = "repository.ShowingRepo.ListByMovie"

	out, err := r.listings(ctx, listingSelect+"WHERE sh.movie_id = ? ORDER BY sh.starts_at ASC, sh.id ASC", movieID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (r *ShowingRepo) listings(ctx context.Context, q string, arg any) ([]model.ShowingListing, error) {
	rows, err := r.db.QueryContext(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ShowingListing{}
	for rows.Next() {
		var (
			l       model.ShowingListing
			desc    sql.NullString
			release sql.NullTime
		)
		if err := rows.Scan(
			&l.ID, &l.MovieID, &l.TheaterID, &l.StartsAt, &l.TicketPrice, &l.CreatedAt,
			&l.TheaterName, &l.ClusterID, &l.ClusterName, &l.Address, &l.SystemID, &l.SystemName, &l.SystemLogo,
			&l.Movie.ID, &l.Movie.Title, &l.Movie.Trailer, &l.Movie.Poster, &desc, &release,
			&l.Movie.Rating, &l.Movie.Hot, &l.Movie.NowShowing, &l.Movie.ComingSoon,
		); err != nil {
			return nil, err
		}
		l.Movie.Description = desc.String
		if release.Valid {
			t := release.Time
			l.Movie.ReleaseDate = &t
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
