// Package analytics derives the dashboard numbers from the current store
// contents. Nothing is cached; callers recompute per request.
package analytics

import (
	"math"

	"github.com/jordache-jozz8/BA-system/internal/db"
)

// UnitPrice is the mock average ticket value used for revenue.
const UnitPrice = 150

type Summary struct {
	TotalReservations int `json:"totalReservations"`
	TotalRevenue      int `json:"totalRevenue"`
	ActiveCustomers   int `json:"activeCustomers"`
	ConfirmedCount    int `json:"-"`
	OccupancyRate     int `json:"occupancyRate"`
}

func Compute(rs []db.Reservation, cs []db.Customer) Summary {
	s := Summary{
		TotalReservations: len(rs),
		TotalRevenue:      len(rs) * UnitPrice,
		ActiveCustomers:   len(cs),
	}
	for _, r := range rs {
		if r.Status == db.StatusConfirmed {
			s.ConfirmedCount++
		}
	}
	if s.TotalReservations > 0 {
		s.OccupancyRate = int(math.Round(float64(s.ConfirmedCount) / float64(s.TotalReservations) * 100))
	}
	return s
}
