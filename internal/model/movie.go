package model

import "time"

// Movie mirrors the `movies` table. Only the fields the booking and
// catalog flows read are mapped.
type Movie struct {
	ID          uint64     // movies.id
	Title       string     // movies.title
	Trailer     string     // movies.trailer
	Poster      string     // movies.poster
	Description string     // movies.description (nullable, empty when NULL)
	ReleaseDate *time.Time // movies.release_date (nullable)
	Rating      int        // movies.rating
	Hot         bool       // movies.hot
	NowShowing  bool       // movies.now_showing
	ComingSoon  bool       // movies.coming_soon
}

// Banner is a promotional image pointing at a movie.
type Banner struct {
	ID      uint64 // banners.id
	MovieID uint64 // banners.movie_id
	Image   string // banners.image
}
