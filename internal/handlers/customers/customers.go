package customers

import "github.com/jordache-jozz8/BA-system/internal/db"

// Package customers provides customer HTTP handlers.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are split into dedicated, focused files:
// - list.go:   Handler.List
// - create.go: Handler.Create
// - update.go: Handler.Update
//
// Customers have no delete endpoint.

const entity = "Customer"

// Handler wires customer endpoints to the store.
type Handler struct{ store db.CustomerStore }

// New returns a new customers handler.
func New(s db.CustomerStore) *Handler { return &Handler{store: s} }
