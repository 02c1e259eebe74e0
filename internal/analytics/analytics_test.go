package analytics

import (
	"testing"

	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/stretchr/testify/assert"
)

func TestCompute_Seed(t *testing.T) {
	got := Compute(db.SeedReservations(), db.SeedCustomers())
	assert.Equal(t, Summary{
		TotalReservations: 3,
		TotalRevenue:      450,
		ActiveCustomers:   3,
		ConfirmedCount:    2,
		OccupancyRate:     67,
	}, got)
}

func TestCompute_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Compute(nil, nil))
}

func TestCompute_RoundsHalfUp(t *testing.T) {
	rs := make([]db.Reservation, 8)
	rs[0].Status = db.StatusConfirmed
	// 1/8 = 12.5%
	assert.Equal(t, 13, Compute(rs, nil).OccupancyRate)
}

func TestCompute_StatusIsCaseSensitive(t *testing.T) {
	rs := []db.Reservation{{Status: "Confirmed"}, {Status: db.StatusConfirmed}}
	s := Compute(rs, nil)
	assert.Equal(t, 1, s.ConfirmedCount)
	assert.Equal(t, 50, s.OccupancyRate)
}
