package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers match
// them with errors.Is and decide what they mean for the request at hand.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("record already exists")
)
