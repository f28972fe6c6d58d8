package netlist

import (
	"fmt"

	"github.com/lsynth/lsynth/dag"
	"github.com/lsynth/lsynth/xmg"
)

// builder accumulates PI declarations and gate definitions from a
// reader, then resolves every referenced net to an edge on demand,
// memoizing results and rejecting cycles.
type builder struct {
	g        *xmg.XMG
	nets     map[string]dag.Edge
	defs     map[string]gateDef
	visiting map[string]bool
}

func newBuilder() *builder {
	return &builder{
		g:        xmg.New(),
		nets:     make(map[string]dag.Edge),
		defs:     make(map[string]gateDef),
		visiting: make(map[string]bool),
	}
}

func (b *builder) addInput(name string) {
	b.nets[name] = b.g.AddInput(name)
}

func (b *builder) define(name string, def gateDef) {
	b.defs[name] = def
}

func (b *builder) resolve(name string) (dag.Edge, error) {
	if e, ok := b.nets[name]; ok {
		return e, nil
	}
	def, ok := b.defs[name]
	if !ok {
		return dag.Edge{}, fmt.Errorf("%w: undefined signal %q", ErrParse, name)
	}
	if b.visiting[name] {
		return dag.Edge{}, fmt.Errorf("%w: cyclic definition of %q", ErrParse, name)
	}
	b.visiting[name] = true
	e, err := b.build(def)
	delete(b.visiting, name)
	if err != nil {
		return dag.Edge{}, err
	}
	b.nets[name] = e
	return e, nil
}

func (b *builder) resolveArgs(names []string) ([]dag.Edge, error) {
	out := make([]dag.Edge, len(names))
	for i, n := range names {
		e, err := b.resolve(n)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (b *builder) build(def gateDef) (dag.Edge, error) {
	switch def.op {
	case "GND":
		return b.g.Zero(), nil
	case "VDD":
		return b.g.One(), nil
	}

	args, err := b.resolveArgs(def.args)
	if err != nil {
		return dag.Edge{}, err
	}

	switch def.op {
	case "BUF":
		return args[0], nil
	case "NOT":
		return args[0].Not(), nil
	case "AND", "NAND":
		acc := args[0]
		for _, e := range args[1:] {
			acc, err = b.g.And(acc, e)
			if err != nil {
				return dag.Edge{}, err
			}
		}
		if def.op == "NAND" {
			acc = acc.Not()
		}
		return acc, nil
	case "OR", "NOR":
		acc := args[0]
		for _, e := range args[1:] {
			acc, err = b.g.Or(acc, e)
			if err != nil {
				return dag.Edge{}, err
			}
		}
		if def.op == "NOR" {
			acc = acc.Not()
		}
		return acc, nil
	case "XOR":
		acc := args[0]
		for _, e := range args[1:] {
			acc, err = b.g.Xor(acc, e)
			if err != nil {
				return dag.Edge{}, err
			}
		}
		return acc, nil
	case "MAJ3":
		return b.g.Maj(args[0], args[1], args[2])
	case "LUT":
		tt, err := parseHexTT(def.lutHex, len(args))
		if err != nil {
			return dag.Edge{}, err
		}
		return decomposeLUT(b.g, tt, args)
	case "MAJK":
		return majorityK(b.g, args)
	default:
		return dag.Edge{}, fmt.Errorf("%w: unknown gate kind %q", ErrParse, def.op)
	}
}
