package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

type smtEmitter struct {
	g       *xmg.XMG
	prefix  string
	names   map[dag.Ref]string
	decls   []string
	asserts []string
	counter int
}

func newSMTEmitter(g *xmg.XMG, prefix string) *smtEmitter {
	return &smtEmitter{g: g, prefix: prefix, names: make(map[dag.Ref]string)}
}

func (e *smtEmitter) freshName() string {
	e.counter++
	return fmt.Sprintf("%s%d", e.prefix, e.counter)
}

func (e *smtEmitter) term(edge dag.Edge) string {
	if edge.Node == e.g.Arena.Const0() {
		if edge.Complem {
			return "true"
		}
		return "false"
	}
	base := e.names[edge.Node]
	if edge.Complem {
		return fmt.Sprintf("(not %s)", base)
	}
	return base
}

// build declares a const per PI and gate node and asserts each gate's
// definition. sharedInputNames, when non-nil, reuses already-declared
// const names for this graph's inputs (positionally) instead of
// declaring fresh ones — the equivalence-miter case, where both sides
// of the comparison must be driven by the same input variables.
func (e *smtEmitter) build(sharedInputNames []string) error {
	for i, pi := range e.g.Inputs() {
		if sharedInputNames != nil {
			e.names[pi] = sharedInputNames[i]
			continue
		}
		name := e.freshName()
		e.names[pi] = name
		e.decls = append(e.decls, fmt.Sprintf("(declare-const %s Bool)", name))
	}

	for _, ref := range e.g.Arena.Topo() {
		kind := e.g.Arena.Kind(ref)
		if kind == dag.KindConst0 || kind == dag.KindPI {
			continue
		}
		fanins := e.g.Arena.Fanins(ref)
		name := e.freshName()
		e.names[ref] = name
		e.decls = append(e.decls, fmt.Sprintf("(declare-const %s Bool)", name))

		var expr string
		switch kind {
		case dag.KindXor:
			expr = fmt.Sprintf("(xor %s %s)", e.term(fanins[0]), e.term(fanins[1]))
		case dag.KindMaj:
			switch {
			case isConstEdge(e.g, fanins[0], false):
				expr = fmt.Sprintf("(and %s %s)", e.term(fanins[1]), e.term(fanins[2]))
			case isConstEdge(e.g, fanins[0], true):
				expr = fmt.Sprintf("(or %s %s)", e.term(fanins[1]), e.term(fanins[2]))
			default:
				a, b, c := e.term(fanins[0]), e.term(fanins[1]), e.term(fanins[2])
				expr = fmt.Sprintf("(or (and %s %s) (and %s %s) (and %s %s))", a, b, a, c, b, c)
			}
		default:
			return fmt.Errorf("%w: node kind %v", ErrUnsupportedGate, kind)
		}
		e.asserts = append(e.asserts, fmt.Sprintf("(assert (= %s %s))", name, expr))
	}
	return nil
}

func writePreamble(bufw *bufio.Writer, emitters ...*smtEmitter) {
	for _, e := range emitters {
		for _, d := range e.decls {
			fmt.Fprintln(bufw, d)
		}
	}
	for _, e := range emitters {
		for _, a := range e.asserts {
			fmt.Fprintln(bufw, a)
		}
	}
}

// WriteSMTSingle emits an SMT-LIB2 encoding of g's single circuit:
// one `(declare-const nᵢ Bool)` then one `(assert (= nᵢ …))` per gate
// (§6), followed by an assertion of the (disjunction of) outputs and a
// final `(check-sat)`.
func WriteSMTSingle(w io.Writer, g *xmg.XMG) error {
	if len(g.Outputs()) == 0 {
		return ErrNoOutputs
	}
	e := newSMTEmitter(g, "n")
	if err := e.build(nil); err != nil {
		return err
	}

	bufw := bufio.NewWriter(w)
	writePreamble(bufw, e)

	outs := g.Outputs()
	terms := make([]string, len(outs))
	for i, o := range outs {
		terms[i] = e.term(o)
	}
	if len(terms) == 1 {
		fmt.Fprintf(bufw, "(assert %s)\n", terms[0])
	} else {
		fmt.Fprintf(bufw, "(assert (or %s))\n", strings.Join(terms, " "))
	}
	fmt.Fprintln(bufw, "(check-sat)")
	return bufw.Flush()
}

// WriteSMTEquivalence emits an SMT-LIB2 equivalence miter between a and
// b (§6): both graphs' gates are defined over one shared set of input
// constants, and the final assertion is the disjunction of per-output
// XORs — UNSAT means a and b compute the same function.
func WriteSMTEquivalence(w io.Writer, a, b *xmg.XMG) error {
	if len(a.Inputs()) != len(b.Inputs()) {
		return fmt.Errorf("%w: miter input-count mismatch (%d vs %d)", ErrParse, len(a.Inputs()), len(b.Inputs()))
	}
	if len(a.Outputs()) != len(b.Outputs()) {
		return fmt.Errorf("%w: miter output-count mismatch (%d vs %d)", ErrParse, len(a.Outputs()), len(b.Outputs()))
	}
	if len(a.Outputs()) == 0 {
		return ErrNoOutputs
	}

	ea := newSMTEmitter(a, "a")
	if err := ea.build(nil); err != nil {
		return err
	}
	sharedInputs := make([]string, len(a.Inputs()))
	for i, pi := range a.Inputs() {
		sharedInputs[i] = ea.names[pi]
	}
	eb := newSMTEmitter(b, "b")
	if err := eb.build(sharedInputs); err != nil {
		return err
	}

	bufw := bufio.NewWriter(w)
	writePreamble(bufw, ea, eb)

	outsA, outsB := a.Outputs(), b.Outputs()
	diffs := make([]string, len(outsA))
	for i := range outsA {
		diffs[i] = fmt.Sprintf("(xor %s %s)", ea.term(outsA[i]), eb.term(outsB[i]))
	}
	if len(diffs) == 1 {
		fmt.Fprintf(bufw, "(assert %s)\n", diffs[0])
	} else {
		fmt.Fprintf(bufw, "(assert (or %s))\n", strings.Join(diffs, " "))
	}
	fmt.Fprintln(bufw, "(check-sat)")
	return bufw.Flush()
}
