package reservations

import "github.com/jordache-jozz8/BA-system/internal/db"

// Package reservations provides reservation HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are implemented in dedicated files:
// - list.go:   Handler.List
// - create.go: Handler.Create
// - update.go: Handler.Update
// - delete.go: Handler.Delete

const entity = "Reservation"

// Handler wires reservation endpoints to the store.
type Handler struct{ store db.ReservationStore }

// New returns a new reservations handler.
func New(s db.ReservationStore) *Handler { return &Handler{store: s} }
