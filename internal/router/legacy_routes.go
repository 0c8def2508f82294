package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/handler"
	"github.com/iliyamo/movie-ticketing/internal/middleware"
	"github.com/iliyamo/movie-ticketing/internal/model"
)

// RegisterLegacy mounts the compatibility surface under /api. Every route
// needs the TokenCybersoft header; ids come from the query string or, for
// the catalog, optionally from the path.
func RegisterLegacy(e *echo.Echo, h Handlers, opts Options) {
	jwt := middleware.JWTAuth(opts.JWTSecret)
	admin := middleware.RequireRole(model.RoleAdmin)

	// the guard sits on the legacy groups only, so unknown paths elsewhere
	// under /api still answer 404
	legacy := middleware.LegacyToken(opts.LegacyToken)
	api := e.Group("/api")

	users := api.Group("/QuanLyNguoiDung", legacy)
	users.POST("/DangKy", h.Auth.Register)
	users.POST("/DangNhap", h.Auth.Login)
	users.POST("/ThongTinTaiKhoan", h.Auth.Account, jwt)

	booking := api.Group("/QuanLyDatVe", legacy)
	booking.GET("/LayDanhSachPhongVe", h.Booking.SeatList(handler.FromQuery("MaLichChieu")))
	booking.POST("/DatVe", h.Booking.Reserve, jwt)
	booking.POST("/TaoLichChieu", h.Booking.CreateShowing, jwt, admin)

	movies := api.Group("/QuanLyPhim", legacy)
	if opts.CatalogCache != nil {
		movies.Use(opts.CatalogCache)
	}
	movies.GET("/LayDanhSachBanner", h.Catalog.Banners)
	movies.GET("/LayDanhSachPhim", h.Catalog.Movies)
	movies.GET("/LayDanhSachPhimPhanTrang", h.Catalog.MoviesPage)
	movies.GET("/LayDanhSachPhimTheoNgay", h.Catalog.MoviesReleasedOn)
	movies.GET("/LayThongTinPhim", h.Catalog.Movie(handler.FromQuery("maPhim")))

	cinemas := api.Group("/QuanLyRap", legacy)
	if opts.CatalogCache != nil {
		cinemas.Use(opts.CatalogCache)
	}
	system := handler.FirstOf(handler.FromParam("maHeThongRap"), handler.FromQuery("maHeThongRap"))
	movie := handler.FirstOf(handler.FromParam("maPhim"), handler.FromQuery("MaPhim"))

	cinemas.GET("/LayThongTinHeThongRap", h.Catalog.Systems)
	for _, path := range []string{"/LayThongTinCumRapTheoHeThong", "/LayThongTinCumRapTheoHeThong/:maHeThongRap"} {
		cinemas.GET(path, h.Catalog.Clusters(system))
	}
	for _, path := range []string{"/LayThongTinLichChieuHeThongRap", "/LayThongTinLichChieuHeThongRap/:maHeThongRap"} {
		cinemas.GET(path, h.Catalog.SystemSchedule(system))
	}
	for _, path := range []string{"/LayThongTinLichChieuPhim", "/LayThongTinLichChieuPhim/:maPhim"} {
		cinemas.GET(path, h.Catalog.MovieSchedule(movie))
	}
}
