package lnn

import "github.com/lsynth/lsynth/revsynth"

// Reorder rewrites c under mode so every gate acts on adjacent lines.
// The returned mapping gives, for each logical line of c, the physical
// line it ends up pinned to in the returned circuit (identity for
// ModeNone/ModeNaive, since neither leaves a persistent shift).
func Reorder(c *revsynth.Circuit, mode Mode) (*revsynth.Circuit, []int, error) {
	if c == nil {
		return nil, nil, ErrNilCircuit
	}
	switch mode {
	case ModeNone:
		out := newCircuitLike(c)
		for _, g := range c.Gates {
			out.AddGate(g)
		}
		return out, identityMapping(c.NumLines), nil
	case ModeNaive:
		return naiveReorder(c)
	case ModeLocal:
		return localReorder(c)
	case ModeGlobal:
		return globalReorder(c)
	default:
		return nil, nil, ErrUnknownMode
	}
}
