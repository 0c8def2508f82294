package handler

import (
	"time"

	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	"github.com/iliyamo/movie-ticketing/internal/service"
)

// Request and response bodies keep the field names existing clients use.

type registerRequest struct {
	TaiKhoan      string `json:"taiKhoan" validate:"required,min=3,max=20"`
	MatKhau       string `json:"matKhau" validate:"required,min=6"`
	HoTen         string `json:"hoTen" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	SoDT          string `json:"soDT" validate:"required,numeric,min=10,max=11"`
	LoaiNguoiDung string `json:"loaiNguoiDung" validate:"omitempty,oneof=KhachHang QuanTri"` // accepted, never honoured
}

type loginRequest struct {
	TaiKhoan string `json:"taiKhoan" validate:"required"`
	MatKhau  string `json:"matKhau" validate:"required,min=6"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ticketRequest struct {
	MaGhe uint64  `json:"maGhe" validate:"required,gt=0"`
	GiaVe float64 `json:"giaVe" validate:"required,gt=0"`
}

type bookingRequest struct {
	MaLichChieu uint64          `json:"maLichChieu" validate:"required,gt=0"`
	DanhSachVe  []ticketRequest `json:"danhSachVe" validate:"required,min=1,dive"`
}

type showingRequest struct {
	MaRap        uint64  `json:"maRap" validate:"required,gt=0"`
	MaPhim       uint64  `json:"maPhim" validate:"required,gt=0"`
	NgayGioChieu string  `json:"ngayGioChieu" validate:"required"`
	GiaVe        float64 `json:"giaVe" validate:"required,gt=0"`
}

type userResponse struct {
	MaNguoiDung   uint64 `json:"maNguoiDung"`
	TaiKhoan      string `json:"taiKhoan"`
	HoTen         string `json:"hoTen"`
	Email         string `json:"email"`
	SoDT          string `json:"soDT"`
	LoaiNguoiDung string `json:"loaiNguoiDung"`
}

func toUser(u model.User) userResponse {
	return userResponse{
		MaNguoiDung:   u.ID,
		TaiKhoan:      u.Username,
		HoTen:         u.FullName,
		Email:         u.Email,
		SoDT:          u.Phone,
		LoaiNguoiDung: u.Role,
	}
}

type sessionResponse struct {
	AccessToken      string       `json:"accessToken"`
	ExpiresAt        time.Time    `json:"expiresAt"`
	RefreshToken     string       `json:"refreshToken"`
	RefreshExpiresAt time.Time    `json:"refreshExpiresAt"`
	User             userResponse `json:"user"`
}

func toSession(s service.Session) sessionResponse {
	return sessionResponse{
		AccessToken:      s.Access.Token,
		ExpiresAt:        s.Access.Exp,
		RefreshToken:     s.Refresh.Raw,
		RefreshExpiresAt: s.Refresh.Exp,
		User:             toUser(s.User),
	}
}

type movieInfo struct {
	MaLichChieu  uint64    `json:"maLichChieu"`
	MaPhim       uint64    `json:"maPhim"`
	TenPhim      string    `json:"tenPhim"`
	HinhAnh      string    `json:"hinhAnh"`
	MaRap        uint64    `json:"maRap"`
	TenRap       string    `json:"tenRap"`
	TenCumRap    string    `json:"tenCumRap"`
	DiaChi       string    `json:"diaChi"`
	NgayGioChieu time.Time `json:"ngayGioChieu"`
	NgayChieu    string    `json:"ngayChieu"`
	GioChieu     string    `json:"gioChieu"`
	GiaVe        float64   `json:"giaVe"`
}

type seatResponse struct {
	MaGhe   uint64  `json:"maGhe"`
	TenGhe  string  `json:"tenGhe"`
	Hang    string  `json:"hang"`
	SoGhe   uint32  `json:"soGhe"`
	LoaiGhe string  `json:"loaiGhe"`
	GiaGhe  float64 `json:"giaGhe"`
	DaDat   bool    `json:"daDat"`
}

type seatMapResponse struct {
	ThongTinPhim movieInfo      `json:"thongTinPhim"`
	DanhSachGhe  []seatResponse `json:"danhSachGhe"`
}

func toSeatMap(m service.SeatMap) seatMapResponse {
	d := m.Showing
	out := seatMapResponse{
		ThongTinPhim: movieInfo{
			MaLichChieu:  d.ID,
			MaPhim:       d.MovieID,
			TenPhim:      d.MovieTitle,
			HinhAnh:      d.MoviePoster,
			MaRap:        d.TheaterID,
			TenRap:       d.TheaterName,
			TenCumRap:    d.ClusterName,
			DiaChi:       d.Address,
			NgayGioChieu: d.StartsAt,
			NgayChieu:    d.StartsAt.Format("2006-01-02"),
			GioChieu:     d.StartsAt.Format("15:04"),
			GiaVe:        d.TicketPrice,
		},
		DanhSachGhe: make([]seatResponse, 0, len(m.Seats)),
	}
	for _, s := range m.Seats {
		out.DanhSachGhe = append(out.DanhSachGhe, seatResponse{
			MaGhe:   s.ID,
			TenGhe:  s.Name,
			Hang:    s.RowLabel,
			SoGhe:   s.SeatNumber,
			LoaiGhe: s.SeatType,
			GiaGhe:  s.Price,
			DaDat:   s.Booked,
		})
	}
	return out
}

type ticketResponse struct {
	MaVe  string  `json:"maVe"`
	MaGhe uint64  `json:"maGhe"`
	GiaVe float64 `json:"giaVe"`
}

type reservationResponse struct {
	MaLichChieu uint64           `json:"maLichChieu"`
	DanhSachVe  []ticketResponse `json:"danhSachVe"`
}

func toReservation(r service.Reservation) reservationResponse {
	out := reservationResponse{MaLichChieu: r.ShowingID, DanhSachVe: make([]ticketResponse, 0, len(r.Bookings))}
	for _, b := range r.Bookings {
		out.DanhSachVe = append(out.DanhSachVe, ticketResponse{MaVe: b.TicketCode, MaGhe: b.SeatID, GiaVe: b.Price})
	}
	return out
}

type movieResponse struct {
	MaPhim        uint64     `json:"maPhim"`
	TenPhim       string     `json:"tenPhim"`
	Trailer       string     `json:"trailer"`
	HinhAnh       string     `json:"hinhAnh"`
	MoTa          string     `json:"moTa"`
	NgayKhoiChieu *time.Time `json:"ngayKhoiChieu"`
	DanhGia       int        `json:"danhGia"`
	Hot           bool       `json:"hot"`
	DangChieu     bool       `json:"dangChieu"`
	SapChieu      bool       `json:"sapChieu"`
}

func toMovie(m model.Movie) movieResponse {
	return movieResponse{
		MaPhim:        m.ID,
		TenPhim:       m.Title,
		Trailer:       m.Trailer,
		HinhAnh:       m.Poster,
		MoTa:          m.Description,
		NgayKhoiChieu: m.ReleaseDate,
		DanhGia:       m.Rating,
		Hot:           m.Hot,
		DangChieu:     m.NowShowing,
		SapChieu:      m.ComingSoon,
	}
}

func toMovies(ms []model.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMovie(m))
	}
	return out
}

type paginationResponse struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type bannerResponse struct {
	MaBanner uint64 `json:"maBanner"`
	MaPhim   uint64 `json:"maPhim"`
	HinhAnh  string `json:"hinhAnh"`
}

func toBanners(bs []model.Banner) []bannerResponse {
	out := make([]bannerResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, bannerResponse{MaBanner: b.ID, MaPhim: b.MovieID, HinhAnh: b.Image})
	}
	return out
}

type theaterResponse struct {
	MaRap  uint64           `json:"maRap"`
	TenRap string           `json:"tenRap"`
	CumRap *clusterResponse `json:"cumRap,omitempty"`
}

type systemResponse struct {
	MaHeThongRap  string            `json:"maHeThongRap"`
	TenHeThongRap string            `json:"tenHeThongRap"`
	Logo          string            `json:"logo"`
	CumRap        []clusterResponse `json:"cumRap,omitempty"`
}

type clusterResponse struct {
	MaCumRap   string            `json:"maCumRap"`
	TenCumRap  string            `json:"tenCumRap"`
	DiaChi     string            `json:"diaChi"`
	RapPhim    []theaterResponse `json:"rapPhim,omitempty"`
	HeThongRap *systemResponse   `json:"heThongRap,omitempty"`
}

func toCluster(c model.CinemaCluster) clusterResponse {
	out := clusterResponse{MaCumRap: c.ID, TenCumRap: c.Name, DiaChi: c.Address, RapPhim: []theaterResponse{}}
	for _, t := range c.Theaters {
		out.RapPhim = append(out.RapPhim, theaterResponse{MaRap: t.ID, TenRap: t.Name})
	}
	return out
}

func toSystems(tree []repository.SystemTree) []systemResponse {
	out := make([]systemResponse, 0, len(tree))
	for _, s := range tree {
		sr := systemResponse{MaHeThongRap: s.ID, TenHeThongRap: s.Name, Logo: s.Logo, CumRap: []clusterResponse{}}
		for _, c := range s.Clusters {
			sr.CumRap = append(sr.CumRap, toCluster(c))
		}
		out = append(out, sr)
	}
	return out
}

type showingResponse struct {
	MaLichChieu  uint64          `json:"maLichChieu"`
	MaRap        uint64          `json:"maRap"`
	MaPhim       uint64          `json:"maPhim"`
	NgayGioChieu time.Time       `json:"ngayGioChieu"`
	GiaVe        float64         `json:"giaVe"`
	Phim         movieResponse   `json:"phim"`
	RapPhim      theaterResponse `json:"rapPhim"`
}

func toListing(l model.ShowingListing) showingResponse {
	return showingResponse{
		MaLichChieu:  l.ID,
		MaRap:        l.TheaterID,
		MaPhim:       l.MovieID,
		NgayGioChieu: l.StartsAt,
		GiaVe:        l.TicketPrice,
		Phim:         toMovie(l.Movie),
		RapPhim: theaterResponse{
			MaRap:  l.TheaterID,
			TenRap: l.TheaterName,
			CumRap: &clusterResponse{
				MaCumRap:  l.ClusterID,
				TenCumRap: l.ClusterName,
				DiaChi:    l.Address,
				HeThongRap: &systemResponse{
					MaHeThongRap:  l.SystemID,
					TenHeThongRap: l.SystemName,
					Logo:          l.SystemLogo,
				},
			},
		},
	}
}

func toListings(ls []model.ShowingListing) []showingResponse {
	out := make([]showingResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, toListing(l))
	}
	return out
}

func toCreatedShowing(cs service.CreatedShowing) showingResponse {
	return showingResponse{
		MaLichChieu:  cs.Showing.ID,
		MaRap:        cs.Showing.TheaterID,
		MaPhim:       cs.Showing.MovieID,
		NgayGioChieu: cs.Showing.StartsAt,
		GiaVe:        cs.Showing.TicketPrice,
		Phim:         toMovie(cs.Movie),
		RapPhim:      theaterResponse{MaRap: cs.Theater.ID, TenRap: cs.Theater.Name},
	}
}
