package rewrite

import "errors"

// Sentinel errors for rewrite package operations.
var (
	// ErrNilGraph indicates Rewrite was called with a nil graph or cache.
	ErrNilGraph = errors.New("rewrite: graph or cache is nil")

	// ErrLeafMismatch indicates a cached template's input count does not
	// match the cut it is being spliced against — a sign the cache was
	// shared across incompatible variable counts.
	ErrLeafMismatch = errors.New("rewrite: template input count does not match cut leaf count")
)
