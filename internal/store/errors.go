package store

import "errors"

var (
	// ErrRecordNotFound is returned when a lookup matches no row under the
	// requested deletion filter.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUnknownTable is returned when a caller names a table outside the
	// syncable set.
	ErrUnknownTable = errors.New("unknown syncable table")
)
