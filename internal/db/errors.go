package db

import "errors"

// ErrNotFound is returned (wrapped with the entity and id) when an update or
// delete targets an id that is not in the store.
var ErrNotFound = errors.New("not found")

// ValidationError reports a create payload with missing required fields.
// Message is safe to return to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
