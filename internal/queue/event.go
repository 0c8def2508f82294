// Package queue defines message payloads exchanged over the message broker
// together with the publisher and the background consumer.
package queue

// TopicBookingConfirmed is both the outbox topic and the queue name the
// event is routed to.
const TopicBookingConfirmed = "booking.confirmed"

// BookingConfirmedEvent is published after a reservation commits. It
// carries enough information for downstream consumers to log and notify
// the customer without querying the primary database.
type BookingConfirmedEvent struct {
	EventID     string       `json:"event_id"`
	ShowingID   uint64       `json:"showing_id"`
	UserID      uint64       `json:"user_id"`
	Username    string       `json:"username"`
	FullName    string       `json:"full_name"`
	Email       string       `json:"email"`
	MovieTitle  string       `json:"movie_title"`
	TheaterName string       `json:"theater_name"`
	ClusterName string       `json:"cluster_name"`
	StartsAt    string       `json:"starts_at"`
	Tickets     []TicketLine `json:"tickets"`
	Total       float64      `json:"total"`
	ConfirmedAt string       `json:"confirmed_at"`
}

// TicketLine is one booked seat of the event.
type TicketLine struct {
	SeatID     uint64  `json:"seat_id"`
	SeatName   string  `json:"seat_name"`
	Price      float64 `json:"price"`
	TicketCode string  `json:"ticket_code"`
}

// SeatNames returns the seat names in ticket order.
func (e BookingConfirmedEvent) SeatNames() []string {
	out := make([]string, 0, len(e.Tickets))
	for _, t := range e.Tickets {
		out = append(out, t.SeatName)
	}
	return out
}
