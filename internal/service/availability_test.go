package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/movie-ticketing/internal/model"
)

func seat(id uint64, row string, n uint32) model.Seat {
	return model.Seat{ID: id, TheaterID: 7, RowLabel: row, SeatNumber: n, Name: row, SeatType: model.SeatStandard, Price: 75000}
}

func TestMergeAvailability(t *testing.T) {
	t.Parallel()

	seats := []model.Seat{seat(1, "A", 1), seat(2, "A", 2), seat(3, "A", 3)}

	cases := []struct {
		name   string
		seats  []model.Seat
		booked []uint64
		want   []bool
	}{
		{"middle seat taken", seats, []uint64{2}, []bool{false, true, false}},
		{"nothing booked", seats, nil, []bool{false, false, false}},
		{"all booked", seats, []uint64{3, 1, 2}, []bool{true, true, true}},
		{"unknown booked ids ignored", seats, []uint64{99}, []bool{false, false, false}},
		{"empty theater", []model.Seat{}, []uint64{1}, []bool{}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := MergeAvailability(tc.seats, tc.booked)
			flags := make([]bool, len(got))
			for i, s := range got {
				flags[i] = s.Booked
				assert.Equal(t, tc.seats[i].ID, s.ID, "order must be preserved")
			}
			assert.Equal(t, tc.want, flags)
		})
	}
}

func TestMergeAvailability_Deterministic(t *testing.T) {
	t.Parallel()

	seats := []model.Seat{seat(1, "A", 1), seat(2, "A", 2), seat(3, "B", 1)}
	booked := []uint64{3, 1}
	seatsCopy := append([]model.Seat(nil), seats...)

	first := MergeAvailability(seats, booked)
	second := MergeAvailability(seats, booked)

	assert.Equal(t, first, second)
	assert.Equal(t, seatsCopy, seats)
	assert.Equal(t, []uint64{3, 1}, booked)
}
