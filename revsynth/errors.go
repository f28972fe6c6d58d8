package revsynth

import "errors"

// Sentinel errors for revsynth package operations.
var (
	// ErrControlTargetOverlap indicates a gate's control set intersects its target line.
	ErrControlTargetOverlap = errors.New("revsynth: control line overlaps target")

	// ErrFredkinSameTarget indicates a Fredkin gate's two targets coincide.
	ErrFredkinSameTarget = errors.New("revsynth: fredkin targets must be distinct")

	// ErrNilXMG indicates a nil *xmg.XMG was passed to Synthesize.
	ErrNilXMG = errors.New("revsynth: xmg is nil")

	// ErrNilCutManager indicates a nil *cut.Manager was passed to Synthesize.
	ErrNilCutManager = errors.New("revsynth: cut manager is nil")

	// ErrNoFeasibleCut indicates an internal node has no cut within the configured LUT size.
	ErrNoFeasibleCut = errors.New("revsynth: node has no cut within lut size")

	// ErrAncillaExhausted indicates the dry run's peak ancilla count cannot
	// be brought under budget even after exhausting every merge opportunity.
	ErrAncillaExhausted = errors.New("revsynth: ancilla budget exhausted after merging")

	// ErrUnknownLine indicates a simulation input vector of the wrong width.
	ErrUnknownLine = errors.New("revsynth: line index out of range")
)
