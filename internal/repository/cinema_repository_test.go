package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCinemaRepo_ListSystems_BuildsTree(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"sid", "sname", "logo", "cid", "cname", "address", "tid", "tname"}
	mock.ExpectQuery(q("FROM cinema_systems s")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("BHDStar", "BHD Star", "bhd.png", "bhd-1", "BHD Bitexco", "2 Hai Trieu", 1, "Rap 1").
			AddRow("BHDStar", "BHD Star", "bhd.png", "bhd-1", "BHD Bitexco", "2 Hai Trieu", 2, "Rap 2").
			AddRow("BHDStar", "BHD Star", "bhd.png", "bhd-2", "BHD Vincom", "72 Le Thanh Ton", nil, nil).
			AddRow("CGV", "CGV", "cgv.png", nil, nil, nil, nil, nil))

	got, err := NewCinemaRepo(db).ListSystems(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Len(t, got[0].Clusters, 2)
	assert.Len(t, got[0].Clusters[0].Theaters, 2)
	assert.Equal(t, "Rap 2", got[0].Clusters[0].Theaters[1].Name)
	assert.Empty(t, got[0].Clusters[1].Theaters)
	assert.NotNil(t, got[0].Clusters[1].Theaters)

	assert.Equal(t, "CGV", got[1].ID)
	assert.Empty(t, got[1].Clusters)
}

func TestCinemaRepo_ListClusters_UnknownSystem(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(q("SELECT 1 FROM cinema_systems WHERE id = ?")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	_, err = NewCinemaRepo(db).ListClusters(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSystemNotFound)
}

func TestSeatRepo_ListByTheater_Ordered(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(q("ORDER BY row_label ASC, seat_number ASC")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "theater_id", "name", "row_label", "seat_number", "seat_type", "price"}).
			AddRow(1, 7, "A1", "A", 1, "Thuong", 75000.0).
			AddRow(2, 7, "A2", "A", 2, "Vip", 90000.0))

	seats, err := NewSeatRepo(db).ListByTheater(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, "Vip", seats[1].SeatType)
}

func TestSeatRepo_ListByTheater_Empty(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(q("FROM seats")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "theater_id", "name", "row_label", "seat_number", "seat_type", "price"}))

	seats, err := NewSeatRepo(db).ListByTheater(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, seats)
	assert.Empty(t, seats)
}
