package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

// SeatRepo provides read access to the seat inventory of theaters.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// ListByTheater returns all seats of a theater ordered by row label and
// then seat number. A theater without seats yields an empty slice.
func (r *SeatRepo) ListByTheater(ctx context.Context, theaterID uint64) ([]model.Seat, error) {
	const op = "repository.SeatRepo.ListByTheater"

	const q = `SELECT id, theater_id, name, row_label, seat_number, seat_type, price
	           FROM seats
	           WHERE theater_id = ?
	           ORDER BY row_label ASC, seat_number ASC`
	rows, err := r.db.QueryContext(ctx, q, theaterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	seats := []model.Seat{}
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.TheaterID, &s.Name, &s.RowLabel, &s.SeatNumber, &s.SeatType, &s.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		seats = append(seats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return seats, nil
}
