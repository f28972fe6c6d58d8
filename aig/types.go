package aig

import "github.com/lsynth/lsynth/dag"

// AIG is an And-Inverter Graph built over a dag.Arena. The zero value is
// not usable; use New.
type AIG struct {
	Arena *dag.Arena
}

// New creates an empty AIG with only the reserved constant-0 node.
func New() *AIG {
	return &AIG{Arena: dag.NewArena()}
}

// Inputs returns the primary input refs in declaration order.
func (g *AIG) Inputs() []dag.Ref { return g.Arena.PIs() }

// Outputs returns the primary output edges in declaration order.
func (g *AIG) Outputs() []dag.Edge { return g.Arena.POs() }

// OutputNames returns the symbolic names of the primary outputs, parallel
// to Outputs.
func (g *AIG) OutputNames() []string { return g.Arena.PONames() }

// Zero is the always-0 edge.
func (g *AIG) Zero() dag.Edge { return dag.E(g.Arena.Const0()) }

// One is the always-1 edge (the complement of Zero).
func (g *AIG) One() dag.Edge { return dag.EC(g.Arena.Const0()) }
