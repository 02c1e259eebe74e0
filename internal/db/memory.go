package db

import (
	"context"
	"sync"
)

// MemoryReservations keeps reservations in a slice guarded by a RWMutex.
// Id assignment and append happen under one write lock.
type MemoryReservations struct {
	mu    sync.RWMutex
	items []Reservation
}

func NewMemoryReservations(seed []Reservation) *MemoryReservations {
	items := make([]Reservation, len(seed))
	copy(items, seed)
	return &MemoryReservations{items: items}
}

func (s *MemoryReservations) List(_ context.Context) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Reservation, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryReservations) Create(_ context.Context, in NewReservation) (Reservation, error) {
	if err := in.Validate(); err != nil {
		return Reservation{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := in.build(nextID(s.items, func(r Reservation) int { return r.ID }))
	s.items = append(s.items, r)
	return r, nil
}

func (s *MemoryReservations) Update(_ context.Context, id int, p ReservationPatch) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Reservation{}, notFound("reservation", id)
	}
	p.Apply(&s.items[i])
	return s.items[i], nil
}

func (s *MemoryReservations) Delete(_ context.Context, id int) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return Reservation{}, notFound("reservation", id)
	}
	deleted := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return deleted, nil
}

func (s *MemoryReservations) indexOf(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// MemoryCustomers mirrors MemoryReservations for customers.
type MemoryCustomers struct {
	mu    sync.RWMutex
	items []Customer
	clock Clock
}

func NewMemoryCustomers(seed []Customer, clock Clock) *MemoryCustomers {
	items := make([]Customer, len(seed))
	copy(items, seed)
	return &MemoryCustomers{items: items, clock: clock}
}

func (s *MemoryCustomers) List(_ context.Context) ([]Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Customer, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryCustomers) Create(_ context.Context, in NewCustomer) (Customer, error) {
	if err := in.Validate(); err != nil {
		return Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := in.build(nextID(s.items, func(c Customer) int { return c.ID }), today(s.clock))
	s.items = append(s.items, c)
	return c, nil
}

func (s *MemoryCustomers) Update(_ context.Context, id int, p CustomerPatch) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			p.Apply(&s.items[i])
			return s.items[i], nil
		}
	}
	return Customer{}, notFound("customer", id)
}

// nextID returns max(existing ids)+1, or 1 for an empty collection. A deleted
// record holding the max id frees that id for reuse.
func nextID[T any](items []T, id func(T) int) int {
	top := 0
	for _, it := range items {
		if v := id(it); v > top {
			top = v
		}
	}
	return top + 1
}
