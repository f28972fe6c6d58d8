package cut

import "errors"

// Sentinel errors for cut package operations.
var (
	// ErrNilArena indicates a nil *dag.Arena was passed.
	ErrNilArena = errors.New("cut: arena is nil")

	// ErrBadK indicates a non-positive K (max leaves per cut).
	ErrBadK = errors.New("cut: K must be positive")

	// ErrBadPriority indicates a non-positive Priority (max retained cuts per node).
	ErrBadPriority = errors.New("cut: Priority must be positive")

	// ErrUnknownNode indicates a ref not present in the enumerated arena.
	ErrUnknownNode = errors.New("cut: ref not found in arena")

	// ErrUnknownCut indicates a Cut handle not recognized by this Manager.
	ErrUnknownCut = errors.New("cut: cut handle not recognized")
)
