package netlist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

type plaCube struct{ in, out string }

// ReadPLA parses the Berkeley PLA format (§6): `.i`, `.o`, `.p`, `.ilb`,
// `.ob`, `.type`, `.e` directives plus cube/output rows, whitespace
// tolerant, `#` comments. Each output is the OR of the AND of literals
// (skipping `-` don't-care positions) over every cube whose output
// column is `1`.
func ReadPLA(r io.Reader) (*Netlist, error) {
	b := newBuilder()
	var ni, no int
	var ilb, obNames []string
	var cubes []plaCube

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
				v, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: malformed .i directive %q", ErrParse, line)
				}
				ni = v
			case ".o":
				v, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("%w: malformed .o directive %q", ErrParse, line)
				}
				no = v
			case ".p", ".type":
				// cube-count hint and product-term polarity tag: both
				// accepted but not required to build a correct sum of
				// products from the rows themselves.
			case ".ilb":
				ilb = fields[1:]
			case ".ob":
				obNames = fields[1:]
			case ".e", ".end":
				// end marker
			default:
				return nil, fmt.Errorf("%w: unknown PLA directive %q", ErrParse, fields[0])
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: malformed PLA cube row %q", ErrParse, line)
		}
		if len(fields[0]) != ni || len(fields[1]) != no {
			return nil, fmt.Errorf("%w: PLA cube width mismatch in row %q", ErrParse, line)
		}
		cubes = append(cubes, plaCube{in: fields[0], out: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if ni == 0 {
		return nil, fmt.Errorf("%w: PLA missing .i header", ErrParse)
	}

	if ilb == nil {
		ilb = make([]string, ni)
		for i := range ilb {
			ilb[i] = fmt.Sprintf("x%d", i)
		}
	}
	if obNames == nil {
		obNames = make([]string, no)
		for i := range obNames {
			obNames[i] = fmt.Sprintf("y%d", i)
		}
	}

	inputs := make([]dag.Edge, ni)
	for i, name := range ilb {
		inputs[i] = b.g.AddInput(name)
		b.nets[name] = inputs[i]
	}

	for j := 0; j < no; j++ {
		var terms []dag.Edge
		for _, c := range cubes {
			switch c.out[j] {
			case '0', '-':
				continue
			case '1':
			default:
				return nil, fmt.Errorf("%w: invalid PLA output symbol %q", ErrParse, string(c.out[j]))
			}

			term, err := plaCubeTerm(b.g, inputs, c.in)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		}

		out := b.g.Zero()
		if len(terms) > 0 {
			out = terms[0]
			for _, t := range terms[1:] {
				var err error
				out, err = b.g.Or(out, t)
				if err != nil {
					return nil, err
				}
			}
		}
		b.g.AddOutput(obNames[j], out)
		b.nets[obNames[j]] = out
	}
	return &Netlist{Graph: b.g, Nets: b.nets}, nil
}

func plaCubeTerm(g *xmg.XMG, inputs []dag.Edge, row string) (dag.Edge, error) {
	var lits []dag.Edge
	for i, ch := range row {
		switch ch {
		case '1':
			lits = append(lits, inputs[i])
		case '0':
			lits = append(lits, inputs[i].Not())
		case '-':
		default:
			return dag.Edge{}, fmt.Errorf("%w: invalid PLA input symbol %q", ErrParse, string(ch))
		}
	}
	if len(lits) == 0 {
		return g.One(), nil
	}
	term := lits[0]
	for _, l := range lits[1:] {
		var err error
		term, err = g.And(term, l)
		if err != nil {
			return dag.Edge{}, err
		}
	}
	return term, nil
}
