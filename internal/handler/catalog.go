package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	"github.com/iliyamo/movie-ticketing/internal/response"
	"github.com/iliyamo/movie-ticketing/internal/service"
)

const (
	defaultMoviePage  = 1
	defaultMovieLimit = 10
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Catalog
type Catalog interface {
	Systems(ctx context.Context) ([]repository.SystemTree, error)
	Clusters(ctx context.Context, systemID string) ([]model.CinemaCluster, error)
	SystemSchedule(ctx context.Context, systemID string) ([]model.ShowingListing, error)
	MovieSchedule(ctx context.Context, movieID uint64) ([]model.ShowingListing, error)
	Movies(ctx context.Context) ([]model.Movie, error)
	MoviesPage(ctx context.Context, page, limit int) (service.MoviePage, error)
	MoviesReleasedOn(ctx context.Context, day time.Time) ([]model.Movie, error)
	Movie(ctx context.Context, movieID uint64) (model.Movie, error)
	Banners(ctx context.Context) ([]model.Banner, error)
}

// CatalogHandler serves the read-only movie, cinema and schedule listings.
type CatalogHandler struct {
	log     *slog.Logger
	catalog Catalog
}

func NewCatalogHandler(log *slog.Logger, catalog Catalog) *CatalogHandler {
	return &CatalogHandler{log: log, catalog: catalog}
}

func (h *CatalogHandler) Systems(c echo.Context) error {
	tree, err := h.catalog.Systems(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, "cinema systems retrieved", map[string]any{"heThongRap": toSystems(tree)})
}

func (h *CatalogHandler) Clusters(system Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := system.text(c)
		if err != nil {
			return err
		}
		clusters, err := h.catalog.Clusters(c.Request().Context(), id)
		if err != nil {
			return err
		}
		out := make([]clusterResponse, 0, len(clusters))
		for _, cl := range clusters {
			out = append(out, toCluster(cl))
		}
		return response.OK(c, "cinema clusters retrieved", map[string]any{"cumRap": out})
	}
}

func (h *CatalogHandler) SystemSchedule(system Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := system.text(c)
		if err != nil {
			return err
		}
		ls, err := h.catalog.SystemSchedule(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return response.OK(c, "cinema system schedule retrieved", map[string]any{"lichChieu": toListings(ls)})
	}
}

func (h *CatalogHandler) MovieSchedule(movie Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := movie.id(c)
		if err != nil {
			return err
		}
		ls, err := h.catalog.MovieSchedule(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return response.OK(c, "movie schedule retrieved", map[string]any{"lichChieu": toListings(ls)})
	}
}

func (h *CatalogHandler) Movies(c echo.Context) error {
	ms, err := h.catalog.Movies(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, "movies retrieved", map[string]any{"movies": toMovies(ms)})
}

// MoviesPage reads page and limit from the query string, defaulting to
// the first page of ten.
func (h *CatalogHandler) MoviesPage(c echo.Context) error {
	page, err := FromQuery("page").intOr(c, defaultMoviePage)
	if err != nil {
		return err
	}
	limit, err := FromQuery("limit").intOr(c, defaultMovieLimit)
	if err != nil {
		return err
	}
	p, err := h.catalog.MoviesPage(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}
	return response.OK(c, "movies page retrieved", map[string]any{
		"movies": toMovies(p.Movies),
		"pagination": paginationResponse{
			CurrentPage:  p.Page,
			TotalPages:   p.TotalPages,
			TotalItems:   p.Total,
			ItemsPerPage: p.Limit,
		},
	})
}

func (h *CatalogHandler) MoviesReleasedOn(c echo.Context) error {
	day, err := FromQuery("ngayKhoiChieu").date(c)
	if err != nil {
		return err
	}
	ms, err := h.catalog.MoviesReleasedOn(c.Request().Context(), day)
	if err != nil {
		return err
	}
	return response.OK(c, "movies by release date retrieved", map[string]any{"movies": toMovies(ms)})
}

func (h *CatalogHandler) Movie(movie Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := movie.id(c)
		if err != nil {
			return err
		}
		m, err := h.catalog.Movie(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return response.OK(c, "movie retrieved", toMovie(m))
	}
}

func (h *CatalogHandler) Banners(c echo.Context) error {
	bs, err := h.catalog.Banners(c.Request().Context())
	if err != nil {
		return err
	}
	return response.OK(c, "banners retrieved", map[string]any{"banners": toBanners(bs)})
}
