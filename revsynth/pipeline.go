package revsynth

import (
	"github.com/lsynth/lsynth/cut"
	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/dsu"
	"github.com/lsynth/lsynth/xmg"
)

// Options configures the LUT-based reversible pipeline.
type Options struct {
	// LUTSize bounds how many leaves a chosen cut may have.
	LUTSize int

	// MaxAncilla caps the peak concurrent ancilla line count; 0 means
	// unbounded (no LUT merging is attempted).
	MaxAncilla int
}

// DefaultOptions returns LUTSize=4, unbounded ancilla budget.
func DefaultOptions() Options {
	return Options{LUTSize: 4}
}

// Option mutates an Options value.
type Option func(*Options)

// WithLUTSize sets the max leaves per chosen cut.
func WithLUTSize(k int) Option { return func(o *Options) { o.LUTSize = k } }

// WithMaxAncilla sets the peak ancilla budget.
func WithMaxAncilla(n int) Option { return func(o *Options) { o.MaxAncilla = n } }

// pickCut selects, among r's retained cuts, the one with the most
// leaves not exceeding lutSize — the largest-area LUT mapping decision
// cut.Manager's priority order doesn't make directly, since its own
// sort favors required-level slack and small size over raw coverage.
// The self-referential trivial cut {r} is never eligible: it exists in
// cut.Manager purely for subsumption bookkeeping, and picking it as a
// LUT boundary for an internal node would make the node its own input.
func pickCut(cm *cut.Manager, r dag.Ref, cuts []cut.Cut, lutSize int) (cut.Cut, bool) {
	var best cut.Cut
	found := false
	for _, c := range cuts {
		if c.LeafCount > lutSize {
			continue
		}
		if c.LeafCount == 1 {
			if leaves := cm.Leaves(c); len(leaves) == 1 && leaves[0] == r {
				continue
			}
		}
		if !found || c.LeafCount > best.LeafCount {
			best = c
			found = true
		}
	}
	return best, found
}

// Synthesize lowers g, already cut-enumerated in cm, into a reversible
// Circuit over g's inputs, g's outputs, and a dynamic ancilla pool
// (§4.G).
func Synthesize(g *xmg.XMG, cm *cut.Manager, opts ...Option) (*Circuit, error) {
	if g == nil {
		return nil, ErrNilXMG
	}
	if cm == nil {
		return nil, ErrNilCutManager
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	arena := g.Arena
	topo := arena.Topo()

	var lutOrder []dag.Ref
	leavesOf := make(map[dag.Ref][]dag.Ref)
	for _, r := range topo {
		if arena.Kind(r) == dag.KindPI || arena.Kind(r) == dag.KindConst0 {
			continue
		}
		cuts, err := cm.CutsFor(r)
		if err != nil {
			continue // interior XOR-chain member, reachable only via its chain root
		}
		best, ok := pickCut(cm, r, cuts, o.LUTSize)
		if !ok {
			return nil, ErrNoFeasibleCut
		}
		lutOrder = append(lutOrder, r)
		leavesOf[r] = cm.Leaves(best)
	}

	isOutput := make(map[dag.Ref]bool)
	for _, po := range arena.POs() {
		isOutput[po.Node] = true
	}

	d := dsu.New(lutOrder)
	groups, groupLeaves, dominator, err := mergeUntilFeasible(
		lutOrder, leavesOf, d.Find, d.Union, isOutput, o.MaxAncilla,
	)
	if err != nil {
		return nil, err
	}

	return build(g, groups, groupLeaves, dominator, d.Find, isOutput)
}

// build runs the real two-pass execution: a dry run to size the
// ancilla pool via consumer counts, then an execution pass emitting
// PI/Compute/Uncompute/PO steps.
func build(
	g *xmg.XMG,
	groups []dag.Ref,
	leaves map[dag.Ref][]dag.Ref,
	dominator map[dag.Ref]dag.Ref,
	find func(dag.Ref) dag.Ref,
	isOutput map[dag.Ref]bool,
) (*Circuit, error) {
	c := &Circuit{}
	lineOf := make(map[dag.Ref]int)

	pis := g.Arena.PIs()
	for i, pi := range pis {
		c.touch(i)
		c.LineNames[i] = g.Arena.Name(pi)
		lineOf[pi] = i
		c.Steps = append(c.Steps, Step{Kind: StepPI, Line: i})
	}

	// The constant-0 wire gets a fixed, never-freed line of its own so
	// that any LUT whose cut leaves include it (e.g. an XMG AND encoded
	// as MAJ(0,a,b)) can reference it as an ordinary control line.
	constLine := len(pis)
	c.touch(constLine)
	lineOf[g.Arena.Const0()] = constLine

	isLUT := make(map[dag.Ref]bool, len(groups))
	for _, rep := range groups {
		isLUT[rep] = true
	}
	remaining := make(map[dag.Ref]int)
	for _, rep := range groups {
		for _, l := range leaves[rep] {
			if isLUT[find(l)] {
				remaining[find(l)]++
			}
		}
	}

	pool := newAncillaPool(constLine + 1)
	cache := newLUTCache()

	for _, rep := range groups {
		leafRefs := leaves[rep]
		inputLines := make([]int, len(leafRefs))
		for i, l := range leafRefs {
			ln, ok := lineOf[l]
			if !ok {
				return nil, ErrNoFeasibleCut
			}
			inputLines[i] = ln
		}

		target := pool.alloc()
		c.touch(target)
		lineOf[rep] = target

		root := dominator[rep]
		tt, err := g.ToTruthTable(dag.E(root), leafRefs)
		if err != nil {
			return nil, err
		}
		gates, err := synthesizeLUT(cache, tt, inputLines, target)
		if err != nil {
			return nil, err
		}
		for _, gt := range gates {
			c.AddGate(gt)
		}
		c.Steps = append(c.Steps, Step{Kind: StepCompute, Line: target, Gates: gates})

		for _, l := range leafRefs {
			lrep := find(l)
			if !isLUT[lrep] {
				continue
			}
			remaining[lrep]--
			if remaining[lrep] == 0 && !isOutput[lrep] {
				uline := lineOf[lrep]
				ug := reverseGates(stepGatesFor(c, uline))
				for _, gt := range ug {
					c.AddGate(gt)
				}
				c.Steps = append(c.Steps, Step{Kind: StepUncompute, Line: uline, Gates: ug})
				pool.release(uline)
			}
		}
	}

	for _, po := range g.Arena.POs() {
		ln, ok := lineOf[po.Node]
		if !ok {
			return nil, ErrNoFeasibleCut
		}
		if po.Complem {
			c.Steps = append(c.Steps, Step{Kind: StepInvPO, Line: ln})
		} else {
			c.Steps = append(c.Steps, Step{Kind: StepPO, Line: ln})
		}
	}

	return c, nil
}

// stepGatesFor finds the most recent Compute step's gate list for line.
func stepGatesFor(c *Circuit, line int) []Gate {
	for i := len(c.Steps) - 1; i >= 0; i-- {
		if c.Steps[i].Kind == StepCompute && c.Steps[i].Line == line {
			return c.Steps[i].Gates
		}
	}
	return nil
}
