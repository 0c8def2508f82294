// Package service implements the booking, catalog and auth workflows.
// Both HTTP surfaces call into these services; nothing in here knows about
// HTTP.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/movie-ticketing/internal/apperr"
	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/queue"
	"github.com/iliyamo/movie-ticketing/internal/repository"
	"github.com/iliyamo/movie-ticketing/internal/utils"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowingStore
type ShowingStore interface {
	GetDetail(ctx context.Context, id uint64) (model.ShowingDetail, error)
	ExistsAt(ctx context.Context, theaterID uint64, startsAt time.Time) (bool, error)
	Create(ctx context.Context, s *model.Showing) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatStore
type SeatStore interface {
	ListByTheater(ctx context.Context, theaterID uint64) ([]model.Seat, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	BookedSeatIDs(ctx context.Context, showingID uint64) ([]uint64, error)
	Reserve(ctx context.Context, p repository.ReserveParams) ([]model.Booking, error)
	GetByTicketCode(ctx context.Context, code string) (model.Booking, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

type TheaterGetter interface {
	GetTheater(ctx context.Context, id uint64) (model.Theater, error)
}

type MovieGetter interface {
	GetByID(ctx context.Context, id uint64) (model.Movie, error)
}

// BookingDeps groups the stores BookingService reads and writes.
type BookingDeps struct {
	Showings ShowingStore
	Seats    SeatStore
	Bookings BookingStore
	Users    UserGetter
	Theaters TheaterGetter
	Movies   MovieGetter
}

// maxTicketCodeAttempts bounds how often Reserve redraws ticket codes after
// a collision on the ticket code unique key.
const maxTicketCodeAttempts = 3

// BookingService serves the seat map, reservations, showing creation and
// ticket lookups.
type BookingService struct {
	log     *slog.Logger
	deps    BookingDeps
	timeout time.Duration

	newCode func() string
	now     func() time.Time
}

func NewBookingService(log *slog.Logger, deps BookingDeps, timeout time.Duration) *BookingService {
	return &BookingService{
		log:     log,
		deps:    deps,
		timeout: timeout,
		newCode: utils.NewTicketCode,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SeatMap is a showing's header plus every seat of its theater with the
// booked flag set.
type SeatMap struct {
	Showing model.ShowingDetail
	Seats   []model.SeatAvailability
}

// Reservation is the result of a successful Reserve.
type Reservation struct {
	ShowingID uint64
	Bookings  []model.Booking
}

// CreatedShowing is a new showing with the movie and theater it refers to.
type CreatedShowing struct {
	Showing model.Showing
	Movie   model.Movie
	Theater model.Theater
}

func (s *BookingService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// ShowingDetail looks up one showing.
func (s *BookingService) ShowingDetail(ctx context.Context, showingID uint64) (model.ShowingDetail, error) {
	if showingID == 0 {
		return model.ShowingDetail{}, apperr.Validation("showing id must be a positive integer",
			apperr.FieldError{Field: "maLichChieu", Message: "must be a positive integer"})
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.deps.Showings.GetDetail(ctx, showingID)
	if errors.Is(err, repository.ErrShowingNotFound) {
		return model.ShowingDetail{}, apperr.NotFound("showing not found")
	}
	if err != nil {
		return model.ShowingDetail{}, apperr.FromStore(err)
	}
	return d, nil
}

// SeatList returns the seat map of a showing.
func (s *BookingService) SeatList(ctx context.Context, showingID uint64) (SeatMap, error) {
	const op = "service.BookingService.SeatList"
	log := s.log.With(slog.String("op", op), slog.Uint64("showing_id", showingID))

	detail, err := s.ShowingDetail(ctx, showingID)
	if err != nil {
		return SeatMap{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	seats, err := s.deps.Seats.ListByTheater(ctx, detail.TheaterID)
	if err != nil {
		log.Error("failed to list seats", sl.Err(err))
		return SeatMap{}, apperr.FromStore(err)
	}
	booked, err := s.deps.Bookings.BookedSeatIDs(ctx, showingID)
	if err != nil {
		log.Error("failed to load booked seats", sl.Err(err))
		return SeatMap{}, apperr.FromStore(err)
	}

	return SeatMap{Showing: detail, Seats: MergeAvailability(seats, booked)}, nil
}

// Reserve books all requested seats of a showing for a user, or none.
func (s *BookingService) Reserve(ctx context.Context, req model.BookingRequest) (Reservation, error) {
	const op = "service.BookingService.Reserve"
	log := s.log.With(
		slog.String("op", op),
		slog.Uint64("showing_id", req.ShowingID),
		slog.Uint64("user_id", req.UserID),
	)

	if err := validateBookingRequest(req); err != nil {
		return Reservation{}, err
	}

	detail, err := s.ShowingDetail(ctx, req.ShowingID)
	if err != nil {
		return Reservation{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.deps.Users.GetByID(ctx, req.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return Reservation{}, apperr.NotFound("user not found")
	}
	if err != nil {
		return Reservation{}, apperr.FromStore(err)
	}

	seats, err := s.deps.Seats.ListByTheater(ctx, detail.TheaterID)
	if err != nil {
		return Reservation{}, apperr.FromStore(err)
	}
	names := make(map[uint64]string, len(seats))
	for _, st := range seats {
		names[st.ID] = st.Name
	}

	var bookings []model.Booking
	for attempt := 1; ; attempt++ {
		params, perr := s.reserveParams(req, detail, user, names)
		if perr != nil {
			return Reservation{}, perr
		}
		bookings, err = s.deps.Bookings.Reserve(ctx, params)
		// a ticket code clash rolls back everything; fresh codes are safe
		if errors.Is(err, repository.ErrTicketCodeTaken) && attempt < maxTicketCodeAttempts {
			log.Warn("ticket code collision, retrying", slog.Int("attempt", attempt))
			continue
		}
		break
	}
	switch {
	case errors.Is(err, repository.ErrSeatTaken):
		log.Info("reservation rejected, seat already booked")
		return Reservation{}, apperr.Conflict("one or more seats are already booked")
	case errors.Is(err, repository.ErrSeatNotFound):
		return Reservation{}, apperr.NotFound("one or more seats do not exist in this theater")
	case err != nil:
		log.Error("reservation failed", sl.Err(err))
		return Reservation{}, apperr.FromStore(err)
	}

	log.Info("reservation created", slog.Int("seats", len(bookings)))
	return Reservation{ShowingID: req.ShowingID, Bookings: orderLike(req.Items, bookings)}, nil
}

// reserveParams draws fresh ticket codes and builds the confirmation event
// written to the outbox with the bookings.
func (s *BookingService) reserveParams(req model.BookingRequest, detail model.ShowingDetail, user model.User, names map[uint64]string) (repository.ReserveParams, error) {
	lines := make([]repository.ReserveLine, len(req.Items))
	for i, it := range req.Items {
		lines[i] = repository.ReserveLine{SeatID: it.SeatID, Price: it.Price, TicketCode: s.newCode()}
	}

	event := queue.BookingConfirmedEvent{
		EventID:     uuid.NewString(),
		ShowingID:   req.ShowingID,
		UserID:      user.ID,
		Username:    user.Username,
		FullName:    user.FullName,
		Email:       user.Email,
		MovieTitle:  detail.MovieTitle,
		TheaterName: detail.TheaterName,
		ClusterName: detail.ClusterName,
		StartsAt:    detail.StartsAt.UTC().Format(time.RFC3339),
		ConfirmedAt: s.now().Format(time.RFC3339),
	}
	for _, l := range lines {
		event.Tickets = append(event.Tickets, queue.TicketLine{
			SeatID: l.SeatID, SeatName: names[l.SeatID], Price: l.Price, TicketCode: l.TicketCode,
		})
		event.Total += l.Price
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return repository.ReserveParams{}, apperr.Internal(err)
	}

	return repository.ReserveParams{
		ShowingID: req.ShowingID,
		TheaterID: detail.TheaterID,
		UserID:    req.UserID,
		Lines:     lines,
		Event: model.OutboxEvent{
			EventID: event.EventID,
			Topic:   queue.TopicBookingConfirmed,
			Payload: payload,
		},
	}, nil
}

func validateBookingRequest(req model.BookingRequest) error {
	var fields []apperr.FieldError
	if req.ShowingID == 0 {
		fields = append(fields, apperr.FieldError{Field: "maLichChieu", Message: "must be a positive integer"})
	}
	if req.UserID == 0 {
		fields = append(fields, apperr.FieldError{Field: "user", Message: "must be a positive integer"})
	}
	if len(req.Items) == 0 {
		fields = append(fields, apperr.FieldError{Field: "danhSachVe", Message: "at least one seat is required"})
	}
	seen := make(map[uint64]struct{}, len(req.Items))
	for _, it := range req.Items {
		if it.SeatID == 0 {
			fields = append(fields, apperr.FieldError{Field: "maGhe", Message: "must be a positive integer"})
			continue
		}
		if it.Price <= 0 {
			fields = append(fields, apperr.FieldError{Field: "giaVe", Message: "must be greater than 0"})
		}
		if _, dup := seen[it.SeatID]; dup {
			fields = append(fields, apperr.FieldError{Field: "maGhe", Message: "duplicate seat in request"})
		}
		seen[it.SeatID] = struct{}{}
	}
	if len(fields) > 0 {
		return apperr.Validation("invalid booking request", fields...)
	}
	return nil
}

// orderLike returns bookings in the order the seats were requested.
func orderLike(items []model.BookingItem, bookings []model.Booking) []model.Booking {
	bySeat := make(map[uint64]model.Booking, len(bookings))
	for _, b := range bookings {
		bySeat[b.SeatID] = b
	}
	out := make([]model.Booking, 0, len(bookings))
	for _, it := range items {
		if b, ok := bySeat[it.SeatID]; ok {
			out = append(out, b)
		}
	}
	return out
}

// CreateShowing schedules a new showing. The theater and movie must exist
// and the theater must be free at that instant.
func (s *BookingService) CreateShowing(ctx context.Context, in model.Showing) (CreatedShowing, error) {
	const op = "service.BookingService.CreateShowing"
	log := s.log.With(slog.String("op", op))

	var fields []apperr.FieldError
	if in.TheaterID == 0 {
		fields = append(fields, apperr.FieldError{Field: "maRap", Message: "must be a positive integer"})
	}
	if in.MovieID == 0 {
		fields = append(fields, apperr.FieldError{Field: "maPhim", Message: "must be a positive integer"})
	}
	if in.StartsAt.IsZero() {
		fields = append(fields, apperr.FieldError{Field: "ngayGioChieu", Message: "is required"})
	}
	if in.TicketPrice <= 0 {
		fields = append(fields, apperr.FieldError{Field: "giaVe", Message: "must be greater than 0"})
	}
	if len(fields) > 0 {
		return CreatedShowing{}, apperr.Validation("invalid showing", fields...)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	theater, err := s.deps.Theaters.GetTheater(ctx, in.TheaterID)
	if errors.Is(err, repository.ErrTheaterNotFound) {
		return CreatedShowing{}, apperr.NotFound("theater not found")
	}
	if err != nil {
		return CreatedShowing{}, apperr.FromStore(err)
	}
	movie, err := s.deps.Movies.GetByID(ctx, in.MovieID)
	if errors.Is(err, repository.ErrMovieNotFound) {
		return CreatedShowing{}, apperr.NotFound("movie not found")
	}
	if err != nil {
		return CreatedShowing{}, apperr.FromStore(err)
	}

	exists, err := s.deps.Showings.ExistsAt(ctx, in.TheaterID, in.StartsAt)
	if err != nil {
		return CreatedShowing{}, apperr.FromStore(err)
	}
	if exists {
		return CreatedShowing{}, showingExists()
	}

	sh := model.Showing{MovieID: in.MovieID, TheaterID: in.TheaterID, StartsAt: in.StartsAt.UTC(), TicketPrice: in.TicketPrice}
	if err := s.deps.Showings.Create(ctx, &sh); err != nil {
		if errors.Is(err, repository.ErrShowingExists) {
			return CreatedShowing{}, showingExists()
		}
		log.Error("failed to create showing", sl.Err(err))
		return CreatedShowing{}, apperr.FromStore(err)
	}

	log.Info("showing created", slog.Uint64("showing_id", sh.ID))
	return CreatedShowing{Showing: sh, Movie: movie, Theater: theater}, nil
}

func showingExists() error {
	return apperr.Validation("showing already exists for this time",
		apperr.FieldError{Field: "ngayGioChieu", Message: "theater already has a showing at this time"})
}

// Ticket returns the booking behind a ticket code. Only the customer who
// booked it or an admin may read it.
func (s *BookingService) Ticket(ctx context.Context, code string, requester model.User) (model.Booking, error) {
	if code == "" {
		return model.Booking{}, apperr.Validation("ticket code is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	b, err := s.deps.Bookings.GetByTicketCode(ctx, code)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return model.Booking{}, apperr.NotFound("ticket not found")
	}
	if err != nil {
		return model.Booking{}, apperr.FromStore(err)
	}
	if b.UserID != requester.ID && !requester.IsAdmin() {
		return model.Booking{}, apperr.Forbidden("ticket belongs to another user")
	}
	return b, nil
}
