package netlist

import (
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

// Netlist is a parsed circuit: an XMG together with the net names a
// reader encountered, so a writer can round-trip the original signal
// names instead of inventing new ones.
type Netlist struct {
	Graph *xmg.XMG
	// Nets maps every declared signal name (input, output, or internal
	// gate) to the edge that computes it.
	Nets map[string]dag.Edge
}

type gateDef struct {
	op     string
	args   []string
	lutHex string
}
