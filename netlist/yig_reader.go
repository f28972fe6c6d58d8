package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadYIG parses the YIG format (§6): `.i N`, `.o N`, `.w N`, `.e`, and
// `name = Yk(args...)` gate lines where Yk is a k-step majority
// aggregator over its args (§4.D), k read off the gate keyword itself
// (e.g. `Y3`, `Y5`). `.i N` names the primary inputs `i0`..`i{N-1}`
// implicitly, since the format carries no separate input-naming
// section; `.o N` is read as "the last N gate definitions, in file
// order, are the circuit's outputs" — a deliberate, documented reading
// of an otherwise-unspecified corner (DESIGN.md), since no separate
// output-naming keyword exists either. `.w N` (total wire count) is
// accepted but not required for a correct build.
func ReadYIG(r io.Reader) (*Netlist, error) {
	b := newBuilder()
	var numOutputs int
	var gateOrder []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ".") {
			fields := strings.Fields(line)
			switch fields[0] {
			case ".i":
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: malformed .i directive %q", ErrParse, line)
				}
				for i := 0; i < n; i++ {
					b.addInput(fmt.Sprintf("i%d", i))
				}
			case ".o":
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: malformed .o directive %q", ErrParse, line)
				}
				numOutputs = n
			case ".w":
				// total wire count: informational only.
			case ".e", ".end":
			default:
				return nil, fmt.Errorf("%w: unknown YIG directive %q", ErrParse, fields[0])
			}
			continue
		}

		name, def, err := parseYIGGate(line)
		if err != nil {
			return nil, err
		}
		b.define(name, def)
		gateOrder = append(gateOrder, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if numOutputs > len(gateOrder) {
		return nil, fmt.Errorf("%w: .o %d exceeds %d declared gates", ErrParse, numOutputs, len(gateOrder))
	}

	outputNames := gateOrder[len(gateOrder)-numOutputs:]
	for _, name := range outputNames {
		e, err := b.resolve(name)
		if err != nil {
			return nil, err
		}
		b.g.AddOutput(name, e)
	}
	return &Netlist{Graph: b.g, Nets: b.nets}, nil
}

func parseYIGGate(line string) (string, gateDef, error) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", gateDef{}, fmt.Errorf("%w: malformed YIG gate line %q", ErrParse, line)
	}
	name := strings.TrimSpace(line[:eq])
	rhs := strings.TrimSpace(line[eq+1:])

	open := strings.IndexByte(rhs, '(')
	closeIdx := strings.LastIndexByte(rhs, ')')
	if open < 0 || closeIdx < open {
		return "", gateDef{}, fmt.Errorf("%w: malformed YIG gate line %q", ErrParse, line)
	}
	keyword := strings.TrimSpace(rhs[:open])
	if len(keyword) < 2 || (keyword[0] != 'Y' && keyword[0] != 'y') {
		return "", gateDef{}, fmt.Errorf("%w: unknown YIG aggregator %q", ErrParse, keyword)
	}
	k, err := strconv.Atoi(keyword[1:])
	if err != nil {
		return "", gateDef{}, fmt.Errorf("%w: malformed YIG aggregator %q", ErrParse, keyword)
	}

	args := splitArgs(rhs[open+1 : closeIdx])
	if len(args) != k {
		return "", gateDef{}, fmt.Errorf("%w: %s declares %d args but lists %d", ErrParse, keyword, k, len(args))
	}
	return name, gateDef{op: "MAJK", args: args}, nil
}
