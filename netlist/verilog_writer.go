package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

type verilogWriter struct {
	g       *xmg.XMG
	names   map[dag.Ref]string
	wires   []string
	assigns []string
	counter int
	usedMaj bool
}

func newVerilogWriter(g *xmg.XMG) *verilogWriter {
	return &verilogWriter{g: g, names: make(map[dag.Ref]string)}
}

// argName resolves e inline: Verilog, unlike BENCH, carries `~` negation
// directly in an expression, so no extra net is ever needed.
func (vw *verilogWriter) argName(e dag.Edge) string {
	if e.Node == vw.g.Arena.Const0() {
		if e.Complem {
			return "1'b1"
		}
		return "1'b0"
	}
	base := vw.names[e.Node]
	if e.Complem {
		return "~" + base
	}
	return base
}

func (vw *verilogWriter) nextWire() string {
	vw.counter++
	name := fmt.Sprintf("w%d", vw.counter)
	vw.wires = append(vw.wires, name)
	return name
}

func (vw *verilogWriter) build() error {
	for _, pi := range vw.g.Inputs() {
		vw.names[pi] = vw.g.Arena.Name(pi)
	}

	for _, ref := range vw.g.Arena.Topo() {
		kind := vw.g.Arena.Kind(ref)
		if kind == dag.KindConst0 || kind == dag.KindPI {
			continue
		}
		fanins := vw.g.Arena.Fanins(ref)
		name := vw.nextWire()
		vw.names[ref] = name

		switch kind {
		case dag.KindXor:
			vw.assigns = append(vw.assigns, fmt.Sprintf("assign %s = %s ^ %s;", name, vw.argName(fanins[0]), vw.argName(fanins[1])))
		case dag.KindMaj:
			switch {
			case isConstEdge(vw.g, fanins[0], false):
				vw.assigns = append(vw.assigns, fmt.Sprintf("assign %s = %s & %s;", name, vw.argName(fanins[1]), vw.argName(fanins[2])))
			case isConstEdge(vw.g, fanins[0], true):
				vw.assigns = append(vw.assigns, fmt.Sprintf("assign %s = %s | %s;", name, vw.argName(fanins[1]), vw.argName(fanins[2])))
			default:
				vw.usedMaj = true
				vw.assigns = append(vw.assigns, fmt.Sprintf("maj3 u%d(%s, %s, %s, %s);",
					vw.counter, vw.argName(fanins[0]), vw.argName(fanins[1]), vw.argName(fanins[2]), name))
			}
		default:
			return fmt.Errorf("%w: node kind %v", ErrUnsupportedGate, kind)
		}
	}
	return nil
}

// WriteVerilog serializes g as the Verilog subset of §6: a module with
// `input`/`output`/`wire` declarations and one `assign` per AND/OR/XOR
// node (recovered from XMG's Maj(0,·,·)/Maj(1,·,·)/Xor encoding); a
// genuine 3-input MAJ node is instead wired to an optional `maj3`
// sub-module, emitted once at the end only if the graph actually uses
// one.
func WriteVerilog(w io.Writer, g *xmg.XMG, moduleName string) error {
	bufw := bufio.NewWriter(w)

	inputNames := make([]string, 0, len(g.Inputs()))
	for _, pi := range g.Inputs() {
		inputNames = append(inputNames, g.Arena.Name(pi))
	}
	outputNames := g.OutputNames()

	vw := newVerilogWriter(g)
	if err := vw.build(); err != nil {
		return err
	}
	var aliasLines []string
	for i, e := range g.Outputs() {
		driver := vw.argName(e)
		outName := outputNames[i]
		if driver != outName {
			aliasLines = append(aliasLines, fmt.Sprintf("assign %s = %s;", outName, driver))
		}
	}

	ports := append(append([]string(nil), inputNames...), outputNames...)
	fmt.Fprintf(bufw, "module %s(%s);\n", moduleName, strings.Join(ports, ", "))
	if len(inputNames) > 0 {
		fmt.Fprintf(bufw, "  input %s;\n", strings.Join(inputNames, ", "))
	}
	if len(outputNames) > 0 {
		fmt.Fprintf(bufw, "  output %s;\n", strings.Join(outputNames, ", "))
	}
	if len(vw.wires) > 0 {
		fmt.Fprintf(bufw, "  wire %s;\n", strings.Join(vw.wires, ", "))
	}
	for _, line := range vw.assigns {
		fmt.Fprintf(bufw, "  %s\n", line)
	}
	for _, line := range aliasLines {
		fmt.Fprintf(bufw, "  %s\n", line)
	}
	fmt.Fprintln(bufw, "endmodule")

	if vw.usedMaj {
		fmt.Fprintln(bufw)
		fmt.Fprintln(bufw, "module maj3(a, b, c, y);")
		fmt.Fprintln(bufw, "  input a, b, c;")
		fmt.Fprintln(bufw, "  output y;")
		fmt.Fprintln(bufw, "  assign y = (a&b)|(a&c)|(b&c);")
		fmt.Fprintln(bufw, "endmodule")
	}
	return bufw.Flush()
}
