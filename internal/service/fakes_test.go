package service

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/movie-ticketing/internal/model"
	"github.com/iliyamo/movie-ticketing/internal/repository"
)

// memStore is an in-memory stand-in for the MySQL stores. Reserve holds a
// mutex for the whole check-and-insert so it enforces the same
// (showing, seat) uniqueness the database does.
type memStore struct {
	mu sync.Mutex

	showings map[uint64]model.ShowingDetail
	seats    map[uint64][]model.Seat // by theater
	bookings map[uint64]map[uint64]model.Booking
	users    map[uint64]model.User
	theaters map[uint64]model.Theater
	movies   map[uint64]model.Movie

	nextID      uint64
	reserveErr  error
	lastReserve repository.ReserveParams
	sawDeadline bool
}

func newMemStore() *memStore {
	starts := time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)
	return &memStore{
		showings: map[uint64]model.ShowingDetail{
			1: {
				Showing:     model.Showing{ID: 1, MovieID: 5, TheaterID: 7, StartsAt: starts, TicketPrice: 75000},
				MovieTitle:  "Dune",
				TheaterName: "Rap 1",
				ClusterName: "BHD Bitexco",
			},
		},
		seats: map[uint64][]model.Seat{
			7: {
				{ID: 1, TheaterID: 7, Name: "A1", RowLabel: "A", SeatNumber: 1, SeatType: model.SeatStandard, Price: 75000},
				{ID: 2, TheaterID: 7, Name: "A2", RowLabel: "A", SeatNumber: 2, SeatType: model.SeatStandard, Price: 75000},
				{ID: 3, TheaterID: 7, Name: "A3", RowLabel: "A", SeatNumber: 3, SeatType: model.SeatVIP, Price: 90000},
				{ID: 4, TheaterID: 7, Name: "A4", RowLabel: "A", SeatNumber: 4, SeatType: model.SeatStandard, Price: 75000},
				{ID: 5, TheaterID: 7, Name: "A5", RowLabel: "A", SeatNumber: 5, SeatType: model.SeatCouple, Price: 150000},
			},
		},
		bookings: map[uint64]map[uint64]model.Booking{},
		users: map[uint64]model.User{
			42: {ID: 42, Username: "alice", FullName: "Alice", Email: "alice@example.com", Role: model.RoleCustomer},
			43: {ID: 43, Username: "bob", Role: model.RoleCustomer},
			1:  {ID: 1, Username: "admin", Role: model.RoleAdmin},
		},
		theaters: map[uint64]model.Theater{7: {ID: 7, ClusterID: "bhd-1", Name: "Rap 1"}},
		movies:   map[uint64]model.Movie{5: {ID: 5, Title: "Dune"}},
		nextID:   100,
	}
}

func (m *memStore) deps() BookingDeps {
	return BookingDeps{Showings: m, Seats: m, Bookings: m, Users: m, Theaters: m, Movies: (*memMovies)(m)}
}

// book marks a seat as taken without going through Reserve.
func (m *memStore) book(showingID, seatID, userID uint64, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bookings[showingID] == nil {
		m.bookings[showingID] = map[uint64]model.Booking{}
	}
	m.nextID++
	m.bookings[showingID][seatID] = model.Booking{ID: m.nextID, ShowingID: showingID, SeatID: seatID, UserID: userID, Price: 75000, TicketCode: code}
}

func (m *memStore) count(showingID uint64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings[showingID])
}

func (m *memStore) GetDetail(ctx context.Context, id uint64) (model.ShowingDetail, error) {
	if err := ctx.Err(); err != nil {
		return model.ShowingDetail{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.showings[id]
	if !ok {
		return model.ShowingDetail{}, repository.ErrShowingNotFound
	}
	return d, nil
}

func (m *memStore) ExistsAt(_ context.Context, theaterID uint64, startsAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.showings {
		if d.TheaterID == theaterID && d.StartsAt.Equal(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) Create(_ context.Context, s *model.Showing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now().UTC()
	m.showings[s.ID] = model.ShowingDetail{Showing: *s}
	return nil
}

func (m *memStore) ListByTheater(_ context.Context, theaterID uint64) ([]model.Seat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Seat{}, m.seats[theaterID]...), nil
}

func (m *memStore) BookedSeatIDs(_ context.Context, showingID uint64) ([]uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := []uint64{}
	for id := range m.bookings[showingID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memStore) Reserve(ctx context.Context, p repository.ReserveParams) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := ctx.Deadline(); ok {
		m.sawDeadline = true
	}
	m.lastReserve = p
	if m.reserveErr != nil {
		return nil, m.reserveErr
	}

	codes := map[string]bool{}
	for _, bySeat := range m.bookings {
		for _, b := range bySeat {
			codes[b.TicketCode] = true
		}
	}
	for _, l := range p.Lines {
		if codes[l.TicketCode] {
			return nil, repository.ErrTicketCodeTaken
		}
	}

	inTheater := map[uint64]bool{}
	for _, s := range m.seats[p.TheaterID] {
		inTheater[s.ID] = true
	}
	for _, l := range p.Lines {
		if !inTheater[l.SeatID] {
			return nil, repository.ErrSeatNotFound
		}
		if _, taken := m.bookings[p.ShowingID][l.SeatID]; taken {
			return nil, repository.ErrSeatTaken
		}
	}
	if m.bookings[p.ShowingID] == nil {
		m.bookings[p.ShowingID] = map[uint64]model.Booking{}
	}
	out := make([]model.Booking, 0, len(p.Lines))
	for _, l := range p.Lines {
		m.nextID++
		b := model.Booking{ID: m.nextID, ShowingID: p.ShowingID, SeatID: l.SeatID, UserID: p.UserID, Price: l.Price, TicketCode: l.TicketCode, CreatedAt: time.Now().UTC()}
		m.bookings[p.ShowingID][l.SeatID] = b
		out = append(out, b)
	}
	return out, nil
}

func (m *memStore) GetByTicketCode(_ context.Context, code string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, bySeat := range m.bookings {
		for _, b := range bySeat {
			if b.TicketCode == code {
				return b, nil
			}
		}
	}
	return model.Booking{}, repository.ErrBookingNotFound
}

func (m *memStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *memStore) GetTheater(_ context.Context, id uint64) (model.Theater, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.theaters[id]
	if !ok {
		return model.Theater{}, repository.ErrTheaterNotFound
	}
	return t, nil
}

// memMovies exposes the movie lookup under GetByID, which the user lookup
// already occupies on memStore.
type memMovies memStore

func (m *memMovies) GetByID(_ context.Context, id uint64) (model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mv, ok := m.movies[id]
	if !ok {
		return model.Movie{}, repository.ErrMovieNotFound
	}
	return mv, nil
}
