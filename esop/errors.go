package esop

import "errors"

// Sentinel errors for esop package operations.
var (
	// ErrWidthMismatch indicates a cube was inserted into a Cover whose
	// declared variable width differs from the cube's own.
	ErrWidthMismatch = errors.New("esop: cube width mismatch across cover")

	// ErrInvalidDistance indicates a pair was queued at a distance other
	// than 2, 3 or 4.
	ErrInvalidDistance = errors.New("esop: EXORLINK distance must be 2, 3, or 4")
)
