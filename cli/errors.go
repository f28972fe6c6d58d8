package cli

import "errors"

// Sentinel errors for cli package operations.
var (
	// ErrNonPositiveTimeout indicates a zero or negative Timeout.
	ErrNonPositiveTimeout = errors.New("cli: timeout must be positive")

	// ErrInvalidLutSize indicates a LutSize outside [1,6], the LUT
	// decomposer's hex-literal row width ceiling.
	ErrInvalidLutSize = errors.New("cli: lut_size must be between 1 and 6")

	// ErrNonPositivePriority indicates a zero or negative Priority.
	ErrNonPositivePriority = errors.New("cli: priority must be positive")

	// ErrInvalidReorderingMode indicates a ReorderingMode outside
	// {0,1,2,3}.
	ErrInvalidReorderingMode = errors.New("cli: reordering_mode must be one of 0,1,2,3")

	// ErrInvalidBreakingChar indicates a Breaking mask containing a
	// character outside the documented set {C,I,s,a,l,t,y}.
	ErrInvalidBreakingChar = errors.New("cli: breaking mask contains an unrecognized character")

	// ErrNegativeStart indicates a negative Start gate count.
	ErrNegativeStart = errors.New("cli: start must be non-negative")
)
