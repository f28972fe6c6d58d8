package satenc

import "errors"

// Sentinel errors for satenc package operations.
var (
	// ErrNegativeWidth indicates NewBitVector was asked for a non-positive
	// bit width.
	ErrNegativeWidth = errors.New("satenc: bit-vector width must be > 0")

	// ErrCardinalityBounds indicates BuildSinzAtMost/BuildPairwiseAtMost
	// was called with k outside [0, len(lits)].
	ErrCardinalityBounds = errors.New("satenc: k out of bounds for cardinality constraint")

	// ErrTimeout names a solver timeout. No function in this package
	// returns it: Solve sets no time limit and reports an undecided
	// verdict as the Unknown status.
	ErrTimeout = errors.New("satenc: solver timed out")
)
