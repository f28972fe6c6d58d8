package xmg

import "github.com/lsynth/lsynth/dag"

// XMG is a XOR-Majority Graph built over a dag.Arena. The zero value is
// not usable; use New.
type XMG struct {
	Arena *dag.Arena
}

// New creates an empty XMG with only the reserved constant-0 node.
func New() *XMG {
	return &XMG{Arena: dag.NewArena()}
}

// Inputs returns the primary input refs in declaration order.
func (g *XMG) Inputs() []dag.Ref { return g.Arena.PIs() }

// Outputs returns the primary output edges in declaration order.
func (g *XMG) Outputs() []dag.Edge { return g.Arena.POs() }

// OutputNames returns the symbolic names of the primary outputs, parallel
// to Outputs.
func (g *XMG) OutputNames() []string { return g.Arena.PONames() }

// Zero is the always-0 edge.
func (g *XMG) Zero() dag.Edge { return dag.E(g.Arena.Const0()) }

// One is the always-1 edge (the complement of Zero).
func (g *XMG) One() dag.Edge { return dag.EC(g.Arena.Const0()) }
