package exact

import (
	"github.com/irifrance/gini/z"

	"github.com/lsynth/lsynth/satenc"
)

// wire is one of a gate's three input slots: a bit-vector selector coding
// one of {the constant-false wire (code 0)} ∪ {primary inputs, codes
// 1..numVars} ∪ {outputs of earlier gates, codes numVars+1..numVars+level}
// ∪, for an XOR gate's otherwise-unused third slot only, {the gate's own
// id as a sentinel}, plus a negation bit.
type wire struct {
	Sel satenc.BitVector
	Neg z.Lit
}

// gate is one level of the candidate XMG: three wires and a type bit
// (false = MAJ, true = XOR, mirroring xmg_exact.cpp's is_xor/is_maj split).
type gate struct {
	Inputs [3]wire
	Type   z.Lit
}

// instance holds the incremental SAT encoding being built for a fixed
// gate count k, plus the running state symmetry breaking needs across
// levels (the `y` blocker's "q occurred so far" accumulators).
type instance struct {
	f       *satenc.Formula
	numVars int
	bw      int
	opts    Options
	gates   []gate
	symAcc  map[int]z.Lit
	outputs [][]z.Lit // per-gate, per-row output literal (populated by constrainGate)
	numRows int
}

// bitWidth returns ceil(log2(numVars+k+2)) per §4.E: the constant wire,
// every primary input, every one of the k gates' outputs, and the final
// gate's own-id sentinel each need a distinct code.
func bitWidth(numVars, k int) int {
	n := numVars + k + 2
	w := 0
	for (1 << uint(w)) < n {
		w++
	}
	if w == 0 {
		w = 1
	}
	return w
}

// newInstance allocates a fresh formula sized for k gates over numVars
// primary inputs.
func newInstance(numVars, k int, opts Options) *instance {
	return &instance{
		f:       satenc.NewFormula(),
		numVars: numVars,
		bw:      bitWidth(numVars, k),
		opts:    opts,
		symAcc:  make(map[int]z.Lit),
		numRows: 1 << uint(numVars),
	}
}

// negateAll returns the literal-wise negation of lits, used to turn an
// "equals" literal set into a hard "not equals" clause.
func negateAll(lits []z.Lit) []z.Lit {
	out := make([]z.Lit, len(lits))
	for i, l := range lits {
		out[i] = l.Not()
	}
	return out
}

// addGate builds the level-th gate's wires and type bit, asserts each
// selector's range, wires the XOR-forces-sentinel-third-input contract,
// and applies every enabled symmetry-breaking constraint against all
// earlier gates.
func (inst *instance) addGate() error {
	level := len(inst.gates)
	sentinel := uint64(inst.numVars + level + 1) // this gate's own id, 1-indexed

	var g gate
	for i := 0; i < 3; i++ {
		bv, err := inst.f.NewBitVector(inst.bw)
		if err != nil {
			return err
		}
		g.Inputs[i] = wire{Sel: bv, Neg: inst.f.NewVar()}
	}
	for i := 0; i < 2; i++ {
		inst.f.AssertLessThanConstant(g.Inputs[i].Sel, uint64(inst.numVars+level+1))
	}
	g.Type = inst.f.NewVar()
	isMaj := g.Type.Not()

	// The third slot ranges over real wires [0,numVars+level] plus the
	// sentinel value; a MAJ gate forbids the sentinel, an XOR gate is
	// forced onto it with no negation (§4.E's "third input forced equal
	// to the gate's own id").
	inst.f.AssertLessThanConstant(g.Inputs[2].Sel, sentinel+1)
	sentinelMismatch := negateAll(g.Inputs[2].Sel.EqualsLiterals(sentinel))
	inst.f.AddClause(append([]z.Lit{isMaj.Not()}, sentinelMismatch...)...)
	conditionalBitsEqualConstant(inst.f, g.Type, g.Inputs[2].Sel, sentinel)
	inst.f.AddConditional([]z.Lit{g.Type}, g.Inputs[2].Neg.Not())

	inst.applySymmetryBreaking(g)
	inst.gates = append(inst.gates, g)
	inst.constrainGate(level, g, inst.numRows)
	return nil
}

// conditionalBitsEqualConstant asserts antecedent ⇒ (bv == val), bit by bit.
func conditionalBitsEqualConstant(f *satenc.Formula, antecedent z.Lit, bv satenc.BitVector, val uint64) {
	for i, l := range bv.Lits {
		bit := (val >> uint(i)) & 1
		if bit == 1 {
			f.AddConditional([]z.Lit{antecedent}, l)
		} else {
			f.AddConditional([]z.Lit{antecedent}, l.Not())
		}
	}
}
