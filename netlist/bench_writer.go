package netlist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

// majority3Hex is the LUT hex literal for the 3-input strict-majority
// function over rows ordered bit0+2*bit1+4*bit2 (rows 3,5,6,7 are 1).
const majority3Hex = "e8"

type benchWriter struct {
	g        *xmg.XMG
	names    map[dag.Ref]string
	negNames map[dag.Ref]string
	lines    []string
	counter  int
	zeroName string
	oneName  string
}

func newBenchWriter(g *xmg.XMG) *benchWriter {
	return &benchWriter{g: g, names: make(map[dag.Ref]string), negNames: make(map[dag.Ref]string)}
}

func (bw *benchWriter) nextName() string {
	bw.counter++
	return fmt.Sprintf("g%d", bw.counter)
}

func (bw *benchWriter) constName(isOne bool) string {
	if isOne {
		if bw.oneName == "" {
			bw.oneName = bw.nextName()
			bw.lines = append(bw.lines, fmt.Sprintf("%s = vdd", bw.oneName))
		}
		return bw.oneName
	}
	if bw.zeroName == "" {
		bw.zeroName = bw.nextName()
		bw.lines = append(bw.lines, fmt.Sprintf("%s = gnd", bw.zeroName))
	}
	return bw.zeroName
}

// argName resolves e to a plain signal name usable as a gate argument,
// materializing a one-off NOT net (memoized per node) when e is
// complemented, since BENCH gate arguments carry no inline negation.
func (bw *benchWriter) argName(e dag.Edge) string {
	if e.Node == bw.g.Arena.Const0() {
		return bw.constName(e.Complem)
	}
	base := bw.names[e.Node]
	if !e.Complem {
		return base
	}
	if n, ok := bw.negNames[e.Node]; ok {
		return n
	}
	n := bw.nextName()
	bw.lines = append(bw.lines, fmt.Sprintf("%s = NOT(%s)", n, base))
	bw.negNames[e.Node] = n
	return n
}

func isConstEdge(g *xmg.XMG, e dag.Edge, wantOne bool) bool {
	return e.Node == g.Arena.Const0() && e.Complem == wantOne
}

func (bw *benchWriter) build() error {
	for _, pi := range bw.g.Inputs() {
		bw.names[pi] = bw.g.Arena.Name(pi)
	}

	for _, ref := range bw.g.Arena.Topo() {
		kind := bw.g.Arena.Kind(ref)
		if kind == dag.KindConst0 || kind == dag.KindPI {
			continue
		}
		fanins := bw.g.Arena.Fanins(ref)
		name := bw.nextName()
		bw.names[ref] = name

		switch kind {
		case dag.KindXor:
			bw.lines = append(bw.lines, fmt.Sprintf("%s = XOR(%s, %s)", name, bw.argName(fanins[0]), bw.argName(fanins[1])))
		case dag.KindMaj:
			switch {
			case isConstEdge(bw.g, fanins[0], false):
				bw.lines = append(bw.lines, fmt.Sprintf("%s = AND(%s, %s)", name, bw.argName(fanins[1]), bw.argName(fanins[2])))
			case isConstEdge(bw.g, fanins[0], true):
				bw.lines = append(bw.lines, fmt.Sprintf("%s = OR(%s, %s)", name, bw.argName(fanins[1]), bw.argName(fanins[2])))
			default:
				bw.lines = append(bw.lines, fmt.Sprintf("%s = LUT %s ( %s, %s, %s )",
					name, majority3Hex, bw.argName(fanins[0]), bw.argName(fanins[1]), bw.argName(fanins[2])))
			}
		default:
			return fmt.Errorf("%w: node kind %v", ErrUnsupportedGate, kind)
		}
	}
	return nil
}

// WriteBench serializes g as BENCH text (§6): INPUT/OUTPUT declarations
// followed by one gate line per internal node in topological order.
// AND/OR nodes recovered from XMG's Maj(0,·,·)/Maj(1,·,·) encoding are
// written as native AND/OR; XOR nodes as native XOR; a genuine 3-input
// MAJ node (no constant fanin) is written as a 3-input LUT, since BENCH
// has no native majority keyword.
func WriteBench(w io.Writer, g *xmg.XMG) error {
	bufw := bufio.NewWriter(w)
	for _, pi := range g.Inputs() {
		fmt.Fprintf(bufw, "INPUT(%s)\n", g.Arena.Name(pi))
	}
	for _, name := range g.OutputNames() {
		fmt.Fprintf(bufw, "OUTPUT(%s)\n", name)
	}

	bw := newBenchWriter(g)
	if err := bw.build(); err != nil {
		return err
	}
	for i, e := range g.Outputs() {
		driver := bw.argName(e)
		outName := g.OutputNames()[i]
		if driver != outName {
			bw.lines = append(bw.lines, fmt.Sprintf("%s = BUF(%s)", outName, driver))
		}
	}

	for _, line := range bw.lines {
		fmt.Fprintln(bufw, line)
	}
	return bufw.Flush()
}
