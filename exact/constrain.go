package exact

import (
	"github.com/irifrance/gini/z"

	"github.com/lsynth/lsynth/satenc"
)

// rawValue returns the constant-or-variable literal that wire code holds
// at truth-table row (the row's bit pattern over the numVars primary
// inputs): false for the constant wire (code 0), the row's bit for a
// primary input, or an earlier gate's per-row output literal otherwise.
func rawValue(f *satenc.Formula, code, row, numVars int, outputs [][]z.Lit) z.Lit {
	if code == 0 {
		return f.False()
	}
	if code <= numVars {
		bit := (row >> uint(code-1)) & 1
		if bit == 1 {
			return f.True()
		}
		return f.False()
	}
	return outputs[code-numVars-1][row]
}

// constrainGate defines, for every row of the truth table, this gate's
// output literal in terms of its three input wires' resolved values,
// negations, and gate type, by disjunction over every legal selector
// code (xmg_exact.cpp's constrain()). It returns the per-row output
// literals so later gates (and the final extraction) can reference them.
func (inst *instance) constrainGate(level int, g gate, numRows int) []z.Lit {
	f := inst.f
	maxCode := inst.numVars + level // inclusive upper bound of legal codes
	out := make([]z.Lit, numRows)

	for row := 0; row < numRows; row++ {
		vals := [3]z.Lit{}
		for i := 0; i < 3; i++ {
			val := f.NewVar()
			// The third slot's sentinel-only code (used by XOR gates) is
			// deliberately excluded here: it names no real wire, so the
			// majority term it would otherwise feed is simply left
			// unconstrained on rows where that gate is an XOR (its value
			// is never read there since Type selects xorVal instead).
			for code := 0; code <= maxCode; code++ {
				raw := rawValue(f, code, row, inst.numVars, inst.outputs)
				antecedent := g.Inputs[i].Sel.EqualsLiterals(uint64(code))
				f.AddConditionalIff(antecedent, val, raw)
			}
			vals[i] = f.Xnor2(g.Inputs[i].Neg, val).Not() // actual = neg ⊕ val
		}

		xorVal := f.Xor2(vals[0], vals[1])
		majVal := f.Maj3(vals[0], vals[1], vals[2])

		o := f.NewVar()
		f.AddConditionalIff([]z.Lit{g.Type}, o, xorVal)
		f.AddConditionalIff([]z.Lit{g.Type.Not()}, o, majVal)
		out[row] = o
	}

	inst.outputs = append(inst.outputs, out)
	return out
}
