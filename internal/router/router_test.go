package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticketing/internal/handler"
	"github.com/iliyamo/movie-ticketing/internal/handler/mocks"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/handlers/slogdiscard"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/response"
	"github.com/iliyamo/movie-ticketing/internal/service"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

const secret = "router-secret"

type fixture struct {
	e       *echo.Echo
	booking *mocks.Booker
	catalog *mocks.Catalog
	auth    *mocks.Authenticator
	cached  *int
}

func newFixture(t *testing.T, legacyToken string) fixture {
	t.Helper()
	log := slogdiscard.NewDiscardLogger()
	f := fixture{
		e:       echo.New(),
		booking: mocks.NewBooker(t),
		catalog: mocks.NewCatalog(t),
		auth:    mocks.NewAuthenticator(t),
		cached:  new(int),
	}
	f.e.Validator = handler.NewValidator()
	f.e.HTTPErrorHandler = response.ErrorHandler(log, false)

	counter := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			*f.cached++
			return next(c)
		}
	}

	RegisterRoutes(f.e, Handlers{
		Root:    handler.NewRootHandler(handler.Info{Name: "Movie Ticketing API", APIPrefix: "/api/v1"}),
		Auth:    handler.NewAuthHandler(log, f.auth),
		Booking: handler.NewBookingHandler(log, f.booking),
		Catalog: handler.NewCatalogHandler(log, f.catalog),
	}, Options{APIPrefix: "/api/v1", JWTSecret: secret, LegacyToken: legacyToken, CatalogCache: counter})
	return f
}

func (f fixture) do(method, path string, headers map[string]string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterRoutes_Mounted(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	mounted := map[string]bool{}
	for _, r := range f.e.Routes() {
		mounted[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /", "GET /health", "GET /healthz", "GET /status", "GET /info", "GET /ping",
		"POST /api/v1/auth/dang-ky", "POST /api/v1/auth/register",
		"POST /api/v1/auth/dang-nhap", "POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh", "POST /api/v1/auth/logout",
		"POST /api/v1/auth/thong-tin-tai-khoan", "GET /api/v1/auth/me",
		"GET /api/v1/bookings/lay-danh-sach-ghe/:maLichChieu",
		"POST /api/v1/bookings/dat-ve", "POST /api/v1/bookings/tao-lich-chieu",
		"GET /api/v1/bookings/ve/:maVe/qr",
		"GET /api/v1/movies/lay-danh-sach-phim", "GET /api/v1/movies/lay-danh-sach-phim-phan-trang",
		"GET /api/v1/movies/lay-danh-sach-phim-theo-ngay", "GET /api/v1/movies/lay-thong-tin-phim/:maPhim",
		"GET /api/v1/movies/lay-danh-sach-banner",
		"GET /api/v1/banners", "GET /api/v1/banners/lay-danh-sach-banner",
		"GET /api/v1/cinemas/lay-thong-tin-he-thong-rap",
		"GET /api/v1/cinemas/lay-thong-tin-cum-rap-theo-he-thong/:maHeThongRap",
		"GET /api/v1/cinemas/lay-thong-tin-lich-chieu-he-thong-rap/:maHeThongRap",
		"GET /api/v1/cinemas/lay-thong-tin-lich-chieu-phim/:maPhim",
		"POST /api/QuanLyNguoiDung/DangKy", "POST /api/QuanLyNguoiDung/DangNhap",
		"POST /api/QuanLyNguoiDung/ThongTinTaiKhoan",
		"GET /api/QuanLyDatVe/LayDanhSachPhongVe", "POST /api/QuanLyDatVe/DatVe",
		"POST /api/QuanLyDatVe/TaoLichChieu",
		"GET /api/QuanLyPhim/LayDanhSachBanner", "GET /api/QuanLyPhim/LayDanhSachPhim",
		"GET /api/QuanLyPhim/LayDanhSachPhimPhanTrang", "GET /api/QuanLyPhim/LayDanhSachPhimTheoNgay",
		"GET /api/QuanLyPhim/LayThongTinPhim",
		"GET /api/QuanLyRap/LayThongTinHeThongRap",
		"GET /api/QuanLyRap/LayThongTinCumRapTheoHeThong",
		"GET /api/QuanLyRap/LayThongTinCumRapTheoHeThong/:maHeThongRap",
		"GET /api/QuanLyRap/LayThongTinLichChieuHeThongRap",
		"GET /api/QuanLyRap/LayThongTinLichChieuPhim/:maPhim",
	} {
		assert.True(t, mounted[want], want)
	}
}

func TestLegacy_RequiresTokenHeader(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "cyber")
	path := "/api/QuanLyDatVe/LayDanhSachPhongVe?MaLichChieu=1"

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, path, nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, path, map[string]string{"TokenCybersoft": "wrong"}, "").Code)

	f.booking.On("SeatList", mock.Anything, uint64(1)).Return(service.SeatMap{}, nil).Once()
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, path, map[string]string{"TokenCybersoft": "cyber"}, "").Code)
}

func TestModernAndLegacyShareWorkflow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	at, err := utils.NewAccessToken(secret, 42, "alice", model.RoleCustomer, 5)
	require.NoError(t, err)
	auth := "Bearer " + at.Token

	want := model.BookingRequest{ShowingID: 1, UserID: 42, Items: []model.BookingItem{{SeatID: 5, Price: 75000}}}
	f.booking.On("Reserve", mock.Anything, want).Return(service.Reservation{ShowingID: 1}, nil).Twice()

	body := `{"maLichChieu":1,"danhSachVe":[{"maGhe":5,"giaVe":75000}]}`
	assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/v1/bookings/dat-ve",
		map[string]string{echo.HeaderAuthorization: auth}, body).Code)
	assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/QuanLyDatVe/DatVe",
		map[string]string{echo.HeaderAuthorization: auth, "TokenCybersoft": "x"}, body).Code)
}

func TestCatalogRoutesAreCachedSeatListIsNot(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	f.catalog.On("Systems", mock.Anything).Return(nil, nil).Once()
	f.booking.On("SeatList", mock.Anything, uint64(1)).Return(service.SeatMap{}, nil).Once()

	f.do(http.MethodGet, "/api/v1/cinemas/lay-thong-tin-he-thong-rap", nil, "")
	assert.Equal(t, 1, *f.cached)

	f.do(http.MethodGet, "/api/v1/bookings/lay-danh-sach-ghe/1", nil, "")
	assert.Equal(t, 1, *f.cached)
}

func TestCreateShowing_AdminOnly(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	at, err := utils.NewAccessToken(secret, 42, "alice", model.RoleCustomer, 5)
	require.NoError(t, err)

	rec := f.do(http.MethodPost, "/api/v1/bookings/tao-lich-chieu",
		map[string]string{echo.HeaderAuthorization: "Bearer " + at.Token},
		`{"maRap":7,"maPhim":5,"ngayGioChieu":"2026-03-01T19:30:00Z","giaVe":75000}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnknownPaths(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "cyber")
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    int
	}{
		{name: "modern api", path: "/api/v1/nope", want: http.StatusNotFound},
		{name: "bare api", path: "/api/nope", want: http.StatusNotFound},
		{name: "legacy group without header", path: "/api/QuanLyDatVe/Unknown", want: http.StatusUnauthorized},
		{name: "legacy group with header", path: "/api/QuanLyDatVe/Unknown", headers: map[string]string{"TokenCybersoft": "cyber"}, want: http.StatusNotFound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.do(http.MethodGet, tt.path, tt.headers, "").Code, tt.name)
	}
}

func TestMovieCatalog_ModernAndLegacy(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "")
	f.catalog.On("Movie", mock.Anything, uint64(5)).Return(model.Movie{ID: 5, Title: "Dune"}, nil).Twice()
	f.catalog.On("MoviesPage", mock.Anything, 2, 50).Return(service.MoviePage{Page: 2, Limit: 50}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/movies/lay-thong-tin-phim/5", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(http.MethodGet, "/api/QuanLyPhim/LayThongTinPhim?maPhim=5", map[string]string{"TokenCybersoft": "x"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(http.MethodGet, "/api/v1/movies/lay-danh-sach-phim-phan-trang?page=2&limit=50", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, *f.cached)

	rec = f.do(http.MethodGet, "/api/QuanLyPhim/LayDanhSachPhim", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
