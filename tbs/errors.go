package tbs

import "errors"

// Sentinel errors for tbs package operations.
var (
	// ErrNilAIG indicates a nil *aig.AIG was passed to Synthesize.
	ErrNilAIG = errors.New("tbs: aig is nil")

	// ErrWidthMismatch indicates the AIG's input and output counts
	// differ; transformation-based synthesis requires a same-width
	// relation so x and y can share one line set.
	ErrWidthMismatch = errors.New("tbs: input and output width must match")

	// ErrSolverUnknown indicates the SAT solver returned an undecided
	// verdict instead of SAT/UNSAT.
	ErrSolverUnknown = errors.New("tbs: solver returned an undecided verdict")
)
