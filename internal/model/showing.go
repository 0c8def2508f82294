package model

import "time"

// Showing is a scheduled screening of a movie in a theater. Price is the
// base ticket price of the showing; seats may carry their own price.
type Showing struct {
	ID          uint64    // showings.id
	MovieID     uint64    // showings.movie_id
	TheaterID   uint64    // showings.theater_id
	StartsAt    time.Time // showings.starts_at (UTC)
	TicketPrice float64   // showings.ticket_price
	CreatedAt   time.Time // showings.created_at
}

// ShowingDetail is a showing joined with its movie, theater and cluster.
// It backs the header of the seat map.
type ShowingDetail struct {
	Showing
	MovieTitle  string
	MoviePoster string
	TheaterName string
	ClusterName string
	Address     string
}

// ShowingListing is one row of a schedule listing: a showing together with
// the place it is screened at and the movie it screens.
type ShowingListing struct {
	Showing
	SystemID    string
	SystemName  string
	SystemLogo  string
	ClusterID   string
	ClusterName string
	Address     string
	TheaterName string
	Movie       Movie
}
