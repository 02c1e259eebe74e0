package db

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedClock Clock = func() time.Time { return time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC) }

func str(s string) *string { return &s }

// forEachBackend runs fn against freshly seeded stores of every backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, s *Stores)) {
	t.Helper()
	for _, backend := range []string{BackendMemory, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s, err := Open(backend, "", fixedClock)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			fn(t, s)
		})
	}
}

func validReservation() NewReservation {
	return NewReservation{Customer: "Ana Lima", Activity: "Paddle Board", Date: "2024-02-01", Time: "9:00 AM", Guide: "Harry Weaver"}
}

func TestReservations_ListSeed(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		rs, err := s.Reservations.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, SeedReservations(), rs)
	})
}

func TestReservations_CreateAssignsNextID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		r, err := s.Reservations.Create(ctx, validReservation())
		require.NoError(t, err)
		assert.Equal(t, 4, r.ID)
		assert.Equal(t, StatusPending, r.Status)
		assert.Equal(t, "", r.Notes)

		rs, _ := s.Reservations.List(ctx)
		require.Len(t, rs, 4)
		assert.Equal(t, r, rs[3])
	})
}

func TestReservations_CreateOnEmptyStoreStartsAtOne(t *testing.T) {
	s := NewMemoryReservations(nil)
	r, err := s.Create(context.Background(), validReservation())
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID)
}

func TestReservations_CreateMissingFields(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		cases := map[string]func(*NewReservation){
			"customer": func(in *NewReservation) { in.Customer = "" },
			"activity": func(in *NewReservation) { in.Activity = "" },
			"date":     func(in *NewReservation) { in.Date = "" },
			"time":     func(in *NewReservation) { in.Time = "" },
			"guide":    func(in *NewReservation) { in.Guide = "" },
		}
		for name, mutate := range cases {
			in := validReservation()
			mutate(&in)
			_, err := s.Reservations.Create(ctx, in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr, name)
			assert.Equal(t, "Missing required reservation fields.", verr.Message)
		}
		rs, _ := s.Reservations.List(ctx)
		assert.Len(t, rs, 3)
	})
}

func TestReservations_UpdateOnlyTouchesPatchedFields(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		before := SeedReservations()[1]

		got, err := s.Reservations.Update(ctx, 2, ReservationPatch{Status: str(StatusConfirmed)})
		require.NoError(t, err)

		want := before
		want.Status = StatusConfirmed
		assert.Equal(t, want, got)

		rs, _ := s.Reservations.List(ctx)
		assert.Equal(t, want, rs[1])
	})
}

func TestReservations_UpdateUnknownID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		_, err := s.Reservations.Update(ctx, 9999, ReservationPatch{Status: str(StatusConfirmed)})
		assert.True(t, errors.Is(err, ErrNotFound))

		rs, _ := s.Reservations.List(ctx)
		assert.Equal(t, SeedReservations(), rs)
	})
}

func TestReservations_DeleteThenDeleteAgain(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		deleted, err := s.Reservations.Delete(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, SeedReservations()[1], deleted)

		rs, _ := s.Reservations.List(ctx)
		require.Len(t, rs, 2)
		for _, r := range rs {
			assert.NotEqual(t, 2, r.ID)
		}

		_, err = s.Reservations.Delete(ctx, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReservations_DeletedMaxIDIsReused(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		_, err := s.Reservations.Delete(ctx, 3)
		require.NoError(t, err)

		r, err := s.Reservations.Create(ctx, validReservation())
		require.NoError(t, err)
		assert.Equal(t, 3, r.ID)
	})
}

func TestReservations_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		const n = 50
		ids := make(chan int, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r, err := s.Reservations.Create(ctx, validReservation())
				if err == nil {
					ids <- r.ID
				}
			}()
		}
		wg.Wait()
		close(ids)

		seen := map[int]bool{}
		for id := range ids {
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
		assert.Len(t, seen, n)
	})
}

func TestCustomers_CreateDefaults(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		c, err := s.Customers.Create(context.Background(), NewCustomer{Name: "Ana Lima", Email: "ana@email.com", Phone: "555-1111"})
		require.NoError(t, err)
		assert.Equal(t, Customer{
			ID:        4,
			Name:      "Ana Lima",
			Email:     "ana@email.com",
			Phone:     "555-1111",
			LastVisit: "2026-03-09",
		}, c)
	})
}

func TestCustomers_CreateMissingFields(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		_, err := s.Customers.Create(ctx, NewCustomer{Name: "Ana Lima", Email: "ana@email.com"})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Missing required customer fields.", verr.Message)

		cs, _ := s.Customers.List(ctx)
		assert.Len(t, cs, 3)
	})
}

func TestCustomers_Update(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Stores) {
		ctx := context.Background()
		n := 6
		got, err := s.Customers.Update(ctx, 1, CustomerPatch{TotalBookings: &n, Address: str("1 Dock Rd")})
		require.NoError(t, err)

		want := SeedCustomers()[0]
		want.TotalBookings = 6
		want.Address = "1 Dock Rd"
		assert.Equal(t, want, got)

		_, err = s.Customers.Update(ctx, 42, CustomerPatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("postgres", "", nil)
	assert.Error(t, err)
}
