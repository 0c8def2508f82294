package service

import "github.com/iliyamo/movie-ticketing/internal/model"

// MergeAvailability annotates every seat with whether its id is in booked.
// Output order equals input order; booked ids that match no seat are
// ignored. The function does no I/O and does not modify its inputs.
func MergeAvailability(seats []model.Seat, booked []uint64) []model.SeatAvailability {
	taken := make(map[uint64]struct{}, len(booked))
	for _, id := range booked {
		taken[id] = struct{}{}
	}
	out := make([]model.SeatAvailability, len(seats))
	for i, s := range seats {
		_, isTaken := taken[s.ID]
		out[i] = model.SeatAvailability{Seat: s, Booked: isTaken}
	}
	return out
}
