package exact

import (
	"fmt"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

// extract reads inst's current SAT model (Solve must have just returned
// Sat) and builds the corresponding xmg.XMG: one gate per instance level,
// wired by each gate's resolved selector code, negation bit, and type.
// invertOutput flips the final output edge for specs given in
// complemented-normal form.
func (inst *instance) extract(invertOutput bool) (*xmg.XMG, error) {
	g := xmg.New()

	wires := make([]dag.Edge, inst.numVars+len(inst.gates)+1)
	wires[0] = g.Zero()
	for i := 0; i < inst.numVars; i++ {
		wires[i+1] = g.AddInput(fmt.Sprintf("x%d", i))
	}

	for level, gt := range inst.gates {
		in := [3]dag.Edge{}
		for i := 0; i < 3; i++ {
			code := int(inst.f.BitVectorValue(gt.Inputs[i].Sel))
			if code < 0 || code >= len(wires) {
				return nil, ErrExtractionOutOfRange
			}
			e := wires[code]
			if inst.f.Value(gt.Inputs[i].Neg) {
				e = e.Not()
			}
			in[i] = e
		}

		var edge dag.Edge
		var err error
		if inst.f.Value(gt.Type) {
			edge, err = g.Xor(in[0], in[1])
		} else {
			edge, err = g.Maj(in[0], in[1], in[2])
		}
		if err != nil {
			return nil, err
		}
		wires[inst.numVars+level+1] = edge
	}

	result := wires[len(wires)-1]
	if invertOutput {
		result = result.Not()
	}
	g.AddOutput("f", result)
	return g, nil
}
