package model

import "time"

// Booking is one reserved seat of one showing. At most one booking exists
// per (showing, seat); the database enforces it with a unique key.
type Booking struct {
	ID         uint64    // bookings.id
	ShowingID  uint64    // bookings.showing_id
	SeatID     uint64    // bookings.seat_id
	UserID     uint64    // bookings.user_id
	Price      float64   // bookings.price
	TicketCode string    // bookings.ticket_code
	CreatedAt  time.Time // bookings.created_at
}

// BookingItem is a requested seat and the price the customer pays for it.
type BookingItem struct {
	SeatID uint64
	Price  float64
}

// BookingRequest is the validated input of a reservation.
type BookingRequest struct {
	ShowingID uint64
	UserID    uint64
	Items     []BookingItem
}
