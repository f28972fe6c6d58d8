package ttable

import "errors"

// Sentinel errors for ttable package operations.
var (
	// ErrMalformedInput indicates a hex or SOP string contained characters
	// outside the expected alphabet.
	ErrMalformedInput = errors.New("ttable: malformed input")

	// ErrInconsistentPolarity indicates an SOP specification mixed on-set
	// and off-set rows (output bit 0 and 1 both present without an
	// explicit, consistent on/off convention).
	ErrInconsistentPolarity = errors.New("ttable: inconsistent on-set/off-set polarity")

	// ErrVarOutOfRange indicates a variable index outside [0, NumVars).
	ErrVarOutOfRange = errors.New("ttable: variable index out of range")

	// ErrWidthMismatch indicates two truth tables or cubes of different
	// variable counts were combined.
	ErrWidthMismatch = errors.New("ttable: width mismatch")

	// ErrTooManyVars indicates Canonicalize was asked to NPN-canonicalize
	// a table over more than 6 variables, beyond what a brute-force
	// search over all permutations and negations can do cheaply.
	ErrTooManyVars = errors.New("ttable: NPN canonicalization supports at most 6 variables")
)
