package model

// Seat types as stored in seats.seat_type.
const (
	SeatStandard = "Thuong"
	SeatVIP      = "Vip"
	SeatCouple   = "Doi"
)

// Seat is a physical seat of a theater. Seats are unique per
// (theater, row, number).
type Seat struct {
	ID         uint64  // seats.id
	TheaterID  uint64  // seats.theater_id
	Name       string  // seats.name
	RowLabel   string  // seats.row_label
	SeatNumber uint32  // seats.seat_number
	SeatType   string  // seats.seat_type
	Price      float64 // seats.price
}

// SeatAvailability is a seat of a showing annotated with whether it is
// already booked. It is derived, never stored.
type SeatAvailability struct {
	Seat
	Booked bool
}
