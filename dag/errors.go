package dag

import "errors"

// Sentinel errors for dag package operations.
var (
	// ErrInvalidRef indicates a Ref that does not index a live node in the Arena.
	ErrInvalidRef = errors.New("dag: invalid node reference")

	// ErrCycle indicates a fanin edge would create a cycle. No function in
	// this package currently returns it: nodes can only reference
	// already-existing refs, and Topo does not check for cycles.
	ErrCycle = errors.New("dag: cycle detected")

	// ErrFaninCount indicates a node was constructed with the wrong number
	// of fanins for its Kind.
	ErrFaninCount = errors.New("dag: wrong fanin count for node kind")
)
