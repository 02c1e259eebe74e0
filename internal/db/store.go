package db

import (
	"context"
	"fmt"
	"time"
)

// ReservationStore is the ordered reservation collection.
type ReservationStore interface {
	List(ctx context.Context) ([]Reservation, error)
	Create(ctx context.Context, in NewReservation) (Reservation, error)
	Update(ctx context.Context, id int, p ReservationPatch) (Reservation, error)
	Delete(ctx context.Context, id int) (Reservation, error)
}

// CustomerStore is the ordered customer collection. Customers cannot be deleted.
type CustomerStore interface {
	List(ctx context.Context) ([]Customer, error)
	Create(ctx context.Context, in NewCustomer) (Customer, error)
	Update(ctx context.Context, id int, p CustomerPatch) (Customer, error)
}

// Clock supplies the current time; customer creation stamps lastVisit with it.
type Clock func() time.Time

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Stores bundles both collections of one backend.
type Stores struct {
	Reservations ReservationStore
	Customers    CustomerStore

	close func() error
}

// Close releases backend resources. State is discarded.
func (s *Stores) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// Open builds seeded stores for the named backend. dsn is only used by the
// sqlite backend.
func Open(backend, dsn string, clock Clock) (*Stores, error) {
	if clock == nil {
		clock = time.Now
	}
	switch backend {
	case "", BackendMemory:
		return &Stores{
			Reservations: NewMemoryReservations(SeedReservations()),
			Customers:    NewMemoryCustomers(SeedCustomers(), clock),
		}, nil
	case BackendSQLite:
		d, err := OpenSQLite(dsn)
		if err != nil {
			return nil, err
		}
		if err := d.Seed(context.Background(), SeedReservations(), SeedCustomers()); err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		return &Stores{
			Reservations: &SQLReservations{db: d},
			Customers:    &SQLCustomers{db: d, clock: clock},
			close:        d.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func today(clock Clock) string {
	return clock().UTC().Format(time.DateOnly)
}

func notFound(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}
