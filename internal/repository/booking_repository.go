package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// BookingRepo persists bookings. A booking row is the only evidence that
// a seat is taken for a showing; there is no hold or pending state.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// ReserveLine is one seat to book together with its price and the ticket
// code issued for it.
type ReserveLine struct {
	SeatID     uint64
	Price      float64
	TicketCode string
}

// ReserveParams is the input of Reserve. Event is written to the outbox in
// the same transaction as the bookings.
type ReserveParams struct {
	ShowingID uint64
	TheaterID uint64
	UserID    uint64
	Lines     []ReserveLine
	Event     model.OutboxEvent
}

// BookedSeatIDs returns the ids of the seats that already have a booking
// for the showing.
func (r *BookingRepo) BookedSeatIDs(ctx context.Context, showingID uint64) ([]uint64, error) {
	const op = "repository.BookingRepo.BookedSeatIDs"

	rows, err := r.db.QueryContext(ctx, "SELECT seat_id FROM bookings WHERE showing_id = ?", showingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	ids := []uint64{}
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// Reserve books every requested seat of the showing or none of them.
//
// Inside one READ COMMITTED transaction it checks that the seats belong to
// the showing's theater, locks any existing bookings for them and inserts
// the new rows with a single statement. Seat ids are processed in
// ascending order so concurrent reservations acquire locks in the same
// order. The unique key on (showing_id, seat_id) turns a race lost between
// the check and the insert into ErrSeatTaken as well.
//
// Returned bookings are ordered by seat id.
func (r *BookingRepo) Reserve(ctx context.Context, p ReserveParams) ([]model.Booking, error) {
	const op = "repository.BookingRepo.Reserve"

	if len(p.Lines) == 0 {
		return nil, fmt.Errorf("%s: no seats requested", op)
	}
	lines := make([]ReserveLine, len(p.Lines))
	copy(lines, p.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].SeatID < lines[j].SeatID })

	seatIDs := make([]any, len(lines))
	for i, l := range lines {
		seatIDs[i] = l.SeatID
	}
	in := placeholders(len(lines))

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// 1) every seat must belong to the showing's theater
	n, err := countRows(ctx, tx,
		"SELECT id FROM seats WHERE theater_id = ? AND id IN ("+in+")",
		append([]any{p.TheaterID}, seatIDs...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: seats: %w", op, err)
	}
	if n != len(lines) {
		return nil, ErrSeatNotFound
	}

	// 2) lock existing bookings for the requested seats
	n, err = countRows(ctx, tx,
		"SELECT seat_id FROM bookings WHERE showing_id = ? AND seat_id IN ("+in+") FOR UPDATE",
		append([]any{p.ShowingID}, seatIDs...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: lock: %w", op, err)
	}
	if n > 0 {
		return nil, ErrSeatTaken
	}

	// 3) insert all rows at once
	var sb strings.Builder
	sb.WriteString("INSERT INTO bookings (showing_id, seat_id, user_id, price, ticket_code) VALUES ")
	args := make([]any, 0, len(lines)*5)
	for i, l := range lines {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, p.ShowingID, l.SeatID, p.UserID, l.Price, l.TicketCode)
	}
	if _, err := tx.ExecContext(ctx, sb.String(), args...); err != nil {
		switch {
		case isDuplicateOn(err, keyBookingTicketCode):
			return nil, ErrTicketCodeTaken
		case isDuplicateKey(err):
			return nil, ErrSeatTaken
		}
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	// 4) read the rows back for ids and timestamps
	rows, err := tx.QueryContext(ctx,
		"SELECT id, showing_id, seat_id, user_id, price, ticket_code, created_at FROM bookings WHERE showing_id = ? AND seat_id IN ("+in+") ORDER BY seat_id",
		append([]any{p.ShowingID}, seatIDs...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: select: %w", op, err)
	}
	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: select: %w", op, err)
	}

	// 5) outbox row in the same transaction
	if p.Event.EventID != "" {
		if err := insertOutboxTx(ctx, tx, p.Event); err != nil {
			return nil, fmt.Errorf("%s: outbox: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}
	committed = true
	return bookings, nil
}

// GetByTicketCode returns ErrBookingNotFound when no booking carries the
// code.
func (r *BookingRepo) GetByTicketCode(ctx context.Context, code string) (model.Booking, error) {
	const op = "repository.BookingRepo.GetByTicketCode"

	var b model.Booking
	err := r.db.QueryRowContext(ctx,
		"SELECT id, showing_id, seat_id, user_id, price, ticket_code, created_at FROM bookings WHERE ticket_code = ? LIMIT 1",
		code).Scan(&b.ID, &b.ShowingID, &b.SeatID, &b.UserID, &b.Price, &b.TicketCode, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func scanBookings(rows *sql.Rows) ([]model.Booking, error) {
	defer rows.Close()
	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.ShowingID, &b.SeatID, &b.UserID, &b.Price, &b.TicketCode, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func countRows(ctx context.Context, tx *sql.Tx, q string, args ...any) (int, error) {
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()
	n := 0
	for rows.Next() {
		n++
	}
	return n, rows.Err()
}

// placeholders returns "?, ?, ?" with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
