// Package router wires handlers and middleware onto echo routes.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/handler"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Root    *handler.RootHandler
	Auth    *handler.AuthHandler
	Booking *handler.BookingHandler
	Catalog *handler.CatalogHandler
}

// Options carries the route level settings.
type Options struct {
	APIPrefix   string
	JWTSecret   string
	LegacyToken string
	// CatalogCache wraps the read-only catalog routes. Nil disables caching.
	CatalogCache echo.MiddlewareFunc
}

// RegisterRoutes mounts the root, modern and legacy surfaces.
func RegisterRoutes(e *echo.Echo, h Handlers, opts Options) {
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api/v1"
	}
	RegisterRoot(e, h.Root)

	api := e.Group(opts.APIPrefix)
	RegisterAuth(api, h.Auth, opts.JWTSecret)
	RegisterBookings(api, h.Booking, opts.JWTSecret)
	RegisterMovies(api, h.Catalog, opts.CatalogCache)
	RegisterCinemas(api, h.Catalog, opts.CatalogCache)

	RegisterLegacy(e, h, opts)
}

// RegisterRoot exposes the unversioned service endpoints.
func RegisterRoot(e *echo.Echo, h *handler.RootHandler) {
	e.GET("/", h.Banner)
	e.GET("/health", h.Health)
	e.GET("/healthz", h.Health)
	e.GET("/status", h.Status)
	e.GET("/info", h.Info)
	e.GET("/ping", h.Ping)
}

func RegisterAuth(api *echo.Group, a *handler.AuthHandler, jwtSecret string) {
	g := api.Group("/auth")
	g.POST("/dang-ky", a.Register)
	g.POST("/register", a.Register)
	g.POST("/dang-nhap", a.Login)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// a bearer, when present, lets logout revoke every session of the user
	g.POST("/logout", a.Logout, middleware.OptionalJWT(jwtSecret))

	jwt := middleware.JWTAuth(jwtSecret)
	g.POST("/thong-tin-tai-khoan", a.Account, jwt)
	g.GET("/me", a.Account, jwt)
}

func RegisterBookings(api *echo.Group, b *handler.BookingHandler, jwtSecret string) {
	jwt := middleware.JWTAuth(jwtSecret)
	admin := middleware.RequireRole(model.RoleAdmin)

	g := api.Group("/bookings")
	// seat availability is never cached
	g.GET("/lay-danh-sach-ghe/:maLichChieu", b.SeatList(handler.FromParam("maLichChieu")))
	g.POST("/dat-ve", b.Reserve, jwt)
	g.POST("/tao-lich-chieu", b.CreateShowing, jwt, admin)
	g.GET("/ve/:maVe/qr", b.TicketQR(handler.FromParam("maVe")), jwt)
}

func RegisterMovies(api *echo.Group, c *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := api.Group("/movies")
	b := api.Group("/banners")
	if cache != nil {
		g.Use(cache)
		b.Use(cache)
	}
	g.GET("/lay-danh-sach-phim", c.Movies)
	g.GET("/lay-danh-sach-phim-phan-trang", c.MoviesPage)
	g.GET("/lay-danh-sach-phim-theo-ngay", c.MoviesReleasedOn)
	g.GET("/lay-thong-tin-phim/:maPhim", c.Movie(handler.FromParam("maPhim")))
	g.GET("/lay-danh-sach-banner", c.Banners)

	b.GET("", c.Banners)
	b.GET("/lay-danh-sach-banner", c.Banners)
}

func RegisterCinemas(api *echo.Group, c *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := api.Group("/cinemas")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("/lay-thong-tin-he-thong-rap", c.Systems)
	g.GET("/lay-thong-tin-cum-rap-theo-he-thong/:maHeThongRap", c.Clusters(handler.FromParam("maHeThongRap")))
	g.GET("/lay-thong-tin-lich-chieu-he-thong-rap/:maHeThongRap", c.SystemSchedule(handler.FromParam("maHeThongRap")))
	g.GET("/lay-thong-tin-lich-chieu-phim/:maPhim", c.MovieSchedule(handler.FromParam("maPhim")))
}
