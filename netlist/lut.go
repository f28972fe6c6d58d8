package netlist

import (
	"fmt"
	"strconv"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/ttable"
	"github.com/lsynth/lsynth/xmg"
)

// parseHexTT decodes a BENCH `LUT <hex>` literal into a dense truth
// table over nVars variables, bit k of the parsed value giving row k —
// the same row/variable convention ttable.TT documents for its own bits.
func parseHexTT(hex string, nVars int) (ttable.TT, error) {
	if nVars > 6 {
		return ttable.TT{}, fmt.Errorf("%w: LUT with %d inputs exceeds the 64-row hex literal width", ErrParse, nVars)
	}
	val, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return ttable.TT{}, fmt.Errorf("%w: malformed LUT hex %q: %v", ErrParse, hex, err)
	}
	tt := ttable.New(nVars)
	rows := tt.Size()
	for row := uint(0); row < rows; row++ {
		tt = tt.SetBit(row, (val>>row)&1 == 1)
	}
	return tt, nil
}

// decomposeLUT builds an XMG edge computing tt over the given input
// edges via Shannon expansion: f = (¬x_i ∧ cof0) ∨ (x_i ∧ cof1), recursing
// from variable index 0 upward to the constant base case.
// Structurally identical subtrees collapse for free through the arena's
// own hash-consing, so a variable the table doesn't actually depend on
// never produces a live MUX around it (lo and hi come back as the same
// edge and the recursion returns it unchanged).
func decomposeLUT(g *xmg.XMG, tt ttable.TT, inputs []dag.Edge) (dag.Edge, error) {
	return decomposeBit(g, tt, 0, 0, inputs)
}

func decomposeBit(g *xmg.XMG, tt ttable.TT, bitIdx int, fixedRow uint, inputs []dag.Edge) (dag.Edge, error) {
	n := tt.NumVars()
	if bitIdx == n {
		if tt.Bit(fixedRow) {
			return g.One(), nil
		}
		return g.Zero(), nil
	}

	lo, err := decomposeBit(g, tt, bitIdx+1, fixedRow, inputs)
	if err != nil {
		return dag.Edge{}, err
	}
	hi, err := decomposeBit(g, tt, bitIdx+1, fixedRow|(uint(1)<<uint(bitIdx)), inputs)
	if err != nil {
		return dag.Edge{}, err
	}
	if lo == hi {
		return lo, nil
	}

	t0, err := g.And(inputs[bitIdx].Not(), lo)
	if err != nil {
		return dag.Edge{}, err
	}
	t1, err := g.And(inputs[bitIdx], hi)
	if err != nil {
		return dag.Edge{}, err
	}
	return g.Or(t0, t1)
}

// majorityK builds the k-input strict-majority function (more true
// inputs than false; k must be odd) by constructing its dense truth
// table directly and decomposing it through decomposeLUT, rather than
// hand-deriving a majority-of-3 cascade identity for arbitrary k — the
// same Shannon-expansion machinery the BENCH LUT reader already uses.
func majorityK(g *xmg.XMG, inputs []dag.Edge) (dag.Edge, error) {
	k := len(inputs)
	if k == 0 || k%2 == 0 {
		return dag.Edge{}, fmt.Errorf("%w: majority aggregator needs an odd input count, got %d", ErrParse, k)
	}
	if k > 6 {
		return dag.Edge{}, fmt.Errorf("%w: majority aggregator with %d inputs exceeds the dense-table construction limit", ErrParse, k)
	}
	tt := ttable.New(k)
	threshold := k/2 + 1
	for row := uint(0); row < tt.Size(); row++ {
		count := 0
		for j := 0; j < k; j++ {
			if (row>>uint(j))&1 == 1 {
				count++
			}
		}
		tt = tt.SetBit(row, count >= threshold)
	}
	return decomposeLUT(g, tt, inputs)
}
