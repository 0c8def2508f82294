package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/response"
	"github.com/iliyamo/movie-ticketing/internal/service"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Booker
type Booker interface {
	SeatList(ctx context.Context, showingID uint64) (service.SeatMap, error)
	Reserve(ctx context.Context, req model.BookingRequest) (service.Reservation, error)
	CreateShowing(ctx context.Context, in model.Showing) (service.CreatedShowing, error)
	Ticket(ctx context.Context, code string, requester model.User) (model.Booking, error)
}

// BookingHandler adapts HTTP requests onto the booking workflow. The modern
// and legacy routes share these handlers and differ only in where ids are
// read from.
type BookingHandler struct {
	log     *slog.Logger
	booking Booker
}

func NewBookingHandler(log *slog.Logger, booking Booker) *BookingHandler {
	return &BookingHandler{log: log, booking: booking}
}

// SeatList returns the seat map of the showing identified by showing.
func (h *BookingHandler) SeatList(showing Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := showing.id(c)
		if err != nil {
			return err
		}
		m, err := h.booking.SeatList(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return response.OK(c, "seat list retrieved", toSeatMap(m))
	}
}

// Reserve books seats for the authenticated user.
func (h *BookingHandler) Reserve(c echo.Context) error {
	const op = "handler.BookingHandler.Reserve"

	me, err := currentUser(c)
	if err != nil {
		return err
	}
	var req bookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := model.BookingRequest{ShowingID: req.MaLichChieu, UserID: me.ID, Items: make([]model.BookingItem, 0, len(req.DanhSachVe))}
	for _, v := range req.DanhSachVe {
		in.Items = append(in.Items, model.BookingItem{SeatID: v.MaGhe, Price: v.GiaVe})
	}

	res, err := h.booking.Reserve(c.Request().Context(), in)
	if err != nil {
		return err
	}
	h.log.Debug("tickets booked", slog.String("op", op), slog.Uint64("showing_id", res.ShowingID), slog.Int("seats", len(res.Bookings)))
	return response.Created(c, "booking successful", toReservation(res))
}

// CreateShowing schedules a showing. Admin only.
func (h *BookingHandler) CreateShowing(c echo.Context) error {
	var req showingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	startsAt, err := parseShowTime(req.NgayGioChieu)
	if err != nil {
		return apperr.Validation("invalid showing time",
			apperr.FieldError{Field: "ngayGioChieu", Message: "must be an ISO 8601 date-time"})
	}

	cs, err := h.booking.CreateShowing(c.Request().Context(), model.Showing{
		TheaterID:   req.MaRap,
		MovieID:     req.MaPhim,
		StartsAt:    startsAt,
		TicketPrice: req.GiaVe,
	})
	if err != nil {
		return err
	}
	return response.Created(c, "showing created", toCreatedShowing(cs))
}

// TicketQR renders the QR code of a ticket as PNG.
func (h *BookingHandler) TicketQR(code Source) echo.HandlerFunc {
	return func(c echo.Context) error {
		me, err := currentUser(c)
		if err != nil {
			return err
		}
		raw, err := code.text(c)
		if err != nil {
			return err
		}
		b, err := h.booking.Ticket(c.Request().Context(), raw, me)
		if err != nil {
			return err
		}
		png, err := utils.TicketQRPNG(b.TicketCode, utils.DefaultQRSize)
		if err != nil {
			return apperr.Internal(err)
		}
		c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")
		return c.Blob(http.StatusOK, "image/png", png)
	}
}

var showTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// parseShowTime accepts RFC 3339 and zone-less ISO forms. Zone-less values
// are taken as UTC.
func parseShowTime(s string) (time.Time, error) {
	var err error
	for _, layout := range showTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
