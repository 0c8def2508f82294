package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CinemaStore
type CinemaStore interface {
	ListSystems(ctx context.Context) ([]repository.SystemTree, error)
	SystemExists(ctx context.Context, systemID string) (bool, error)
	ListClusters(ctx context.Context, systemID string) ([]model.CinemaCluster, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ScheduleStore
type ScheduleStore interface {
	ListBySystem(ctx context.Context, systemID string) ([]model.ShowingListing, error)
	ListByMovie(ctx context.Context, movieID uint64) ([]model.ShowingListing, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MovieStore
type MovieStore interface {
	MovieGetter
	List(ctx context.Context) ([]model.Movie, error)
	ListPage(ctx context.Context, offset, limit int) ([]model.Movie, int, error)
	ListReleasedBetween(ctx context.Context, from, to time.Time) ([]model.Movie, error)
	ListBanners(ctx context.Context) ([]model.Banner, error)
}

// MaxMoviePageSize caps the page size of paginated movie listings.
const MaxMoviePageSize = 50

// MoviePage is one page of the movie listing.
type MoviePage struct {
	Movies     []model.Movie
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// CatalogService serves the read-only movie, cinema and schedule listings.
type CatalogService struct {
	log       *slog.Logger
	cinemas   CinemaStore
	schedules ScheduleStore
	movies    MovieStore
	timeout   time.Duration
}

func NewCatalogService(log *slog.Logger, cinemas CinemaStore, schedules ScheduleStore, movies MovieStore, timeout time.Duration) *CatalogService {
	return &CatalogService{log: log, cinemas: cinemas, schedules: schedules, movies: movies, timeout: timeout}
}

func (s *CatalogService) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Systems returns every cinema system with its clusters and theaters.
func (s *CatalogService) Systems(ctx context.Context) ([]repository.SystemTree, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	out, err := s.cinemas.ListSystems(ctx)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return out, nil
}

// Clusters returns the clusters of one system.
func (s *CatalogService) Clusters(ctx context.Context, systemID string) ([]model.CinemaCluster, error) {
	systemID = strings.TrimSpace(systemID)
	if systemID == "" {
		return nil, apperr.Validation("cinema system id is required",
			apperr.FieldError{Field: "maHeThongRap", Message: "is required"})
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	out, err := s.cinemas.ListClusters(ctx, systemID)
	if errors.Is(err, repository.ErrSystemNotFound) {
		return nil, apperr.NotFound("cinema system not found")
	}
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return out, nil
}

// SystemSchedule lists the showings of one cinema system by start time.
func (s *CatalogService) SystemSchedule(ctx context.Context, systemID string) ([]model.ShowingListing, error) {
	systemID = strings.TrimSpace(systemID)
	if systemID == "" {
		return nil, apperr.Validation("cinema system id is required",
			apperr.FieldError{Field: "maHeThongRap", Message: "is required"})
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	ok, err := s.cinemas.SystemExists(ctx, systemID)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	if !ok {
		return nil, apperr.NotFound("cinema system not found")
	}
	out, err := s.schedules.ListBySystem(ctx, systemID)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return out, nil
}

// MovieSchedule lists the showings of one movie by start time.
func (s *CatalogService) MovieSchedule(ctx context.Context, movieID uint64) ([]model.ShowingListing, error) {
	if movieID == 0 {
		return nil, apperr.Validation("movie id must be a positive integer",
			apperr.FieldError{Field: "maPhim", Message: "must be a positive integer"})
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, apperr.NotFound("movie not found")
		}
		return nil, apperr.FromStore(err)
	}
	out, err := s.schedules.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return out, nil
}

// Movies returns every movie, newest first.
func (s *CatalogService) Movies(ctx context.Context) ([]model.Movie, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	out, err := s.movies.List(ctx)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return out, nil
}

// MoviesPage returns one page of movies. Pages start at 1; a limit above
// MaxMoviePageSize is lowered to it.
func (s *CatalogService) MoviesPage(ctx context.Context, page, limit int) (MoviePage, error) {
	var fields []apperr.FieldError
	if page < 1 {
		fields = append(fields, apperr.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if limit < 1 {
		fields = append(fields, apperr.FieldError{Field: "limit", Message: "must be at least 1"})
	}
	if len(fields) > 0 {
		return MoviePage{}, apperr.Validation("invalid pagination", fields...)
	}
	limit = min(limit, MaxMoviePageSize)

	ctx, cancel := s.ctx(ctx)
	defer cancel()

	movies, total, err := s.movies.ListPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return MoviePage{}, apperr.FromStore(err)
	}
	return MoviePage{
		Movies:     movies,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// MoviesReleasedOn returns the movies released on the calendar day of
// day, in day's location.
func (s *CatalogService) MoviesReleasedOn(ctx context.Context, day time.Time) ([]model.Movie, error) {
	if day.IsZero() {
		return nil, apperr.Validation("release date is required",
			apperr.FieldError{Field: "ngayKhoiChieu", Message: "is required"})
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	ctx, cancel := s.ctx(ctx)
	defer cancel()

	out, err := s.movies.ListReleasedBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return out, nil
}

// Movie returns one movie.
func (s *CatalogService) Movie(ctx context.Context, movieID uint64) (model.Movie, error) {
	if movieID == 0 {
		return model.Movie{}, apperr.Validation("movie id must be a positive integer",
			apperr.FieldError{Field: "maPhim", Message: "must be a positive integer"})
	}
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	m, err := s.movies.GetByID(ctx, movieID)
	if errors.Is(err, repository.ErrMovieNotFound) {
		return model.Movie{}, apperr.NotFound("movie not found")
	}
	if err != nil {
		return model.Movie{}, apperr.FromStore(err)
	}
	return m, nil
}

// Banners returns the promotional banners, newest first.
func (s *CatalogService) Banners(ctx context.Context) ([]model.Banner, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	out, err := s.movies.ListBanners(ctx)
	if err != nil {
		return nil, apperr.FromStore(err)
	}
	return out, nil
}
