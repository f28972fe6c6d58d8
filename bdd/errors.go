package bdd

import "errors"

// Sentinel errors for bdd package operations.
var (
	// ErrInvalidRef indicates a Ref that does not index a live node.
	ErrInvalidRef = errors.New("bdd: invalid node reference")

	// ErrVarOrder indicates an attempt to build a node whose variable does
	// not precede both of its children's variables (reduction invariant).
	ErrVarOrder = errors.New("bdd: variable ordering violated")
)
