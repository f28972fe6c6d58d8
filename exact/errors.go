package exact

import "errors"

// Sentinel errors for exact package operations.
var (
	// ErrBudgetExhausted indicates the iterative-deepening loop reached
	// MaxGates without finding a satisfying circuit.
	ErrBudgetExhausted = errors.New("exact: no circuit found within gate-count budget")

	// ErrTimeout indicates the solver returned UNKNOWN (timeout) at some
	// gate count and the caller's Options did not request skipping ahead.
	ErrTimeout = errors.New("exact: solver timed out before a verdict")

	// ErrExtractionOutOfRange indicates a selector's decoded model value
	// named a wire code outside the gate's legal range, which would
	// signal an encoding bug rather than a synthesis failure.
	ErrExtractionOutOfRange = errors.New("exact: selector decoded to an out-of-range wire code")

	// ErrTruthTableWidth indicates the target truth table's variable
	// count does not match NumVars passed to Synthesize.
	ErrTruthTableWidth = errors.New("exact: truth table width does not match NumVars")
)
