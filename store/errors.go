package store

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup for an id that has no matching record. It is
// the expected outcome of querying a stale id, not an internal failure.
var ErrNotFound = errors.New("record not found")

// ValidationError names the first required field missing from a payload.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// PersistenceError wraps an I/O failure against the backing store. Callers
// surface it as a generic failure; the wrapped cause goes to the log.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
