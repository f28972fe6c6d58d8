package store

import "errors"

// Sentinel errors for store package operations.
var (
	// ErrNotFound indicates the uuid does not name a known entry.
	ErrNotFound = errors.New("store: entry not found")

	// ErrEmptyLabel indicates Put was called with an empty label.
	ErrEmptyLabel = errors.New("store: label must be non-empty")
)
