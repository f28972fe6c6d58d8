package dfs

import (
	"fmt"

	"github.com/lsynth/lsynth/dag"
)

type walker struct {
	arena *dag.Arena
	opts  Options
	res   *Result
}

// Walk traverses a.Fanins from start (or from every PO if opts include
// WithFullWalk), recording post-order, depth, and parent links. Refs are
// discovered through their fanin edges, the natural "depends on"
// direction for a DAG whose nodes reference already-built fanins.
func Walk(a *dag.Arena, start dag.Ref, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrArenaNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullWalk && (start == dag.NullRef || int(start) >= a.NumNodes()) {
		return nil, ErrStartRefInvalid
	}

	res := &Result{
		Order:   make([]dag.Ref, 0, a.NumNodes()),
		Depth:   make(map[dag.Ref]int, a.NumNodes()),
		Parent:  make(map[dag.Ref]dag.Ref, a.NumNodes()),
		Visited: make(map[dag.Ref]bool, a.NumNodes()),
	}
	w := &walker{arena: a, opts: o, res: res}

	if o.FullWalk {
		for _, po := range a.POs() {
			if !res.Visited[po.Node] {
				if err := w.visit(po.Node, 0); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.visit(start, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (w *walker) visit(r dag.Ref, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[r] = true
	w.res.Depth[r] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(r); err != nil {
			return fmt.Errorf("dfs: OnVisit(%d): %w", r, err)
		}
	}

	for _, fanin := range w.arena.Fanins(r) {
		child := fanin.Node
		if w.opts.FilterFanin != nil && !w.opts.FilterFanin(child) {
			w.res.SkippedFanins++
			continue
		}
		if !w.res.Visited[child] {
			w.res.Parent[child] = r
			if err := w.visit(child, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(r); err != nil {
			return fmt.Errorf("dfs: OnExit(%d): %w", r, err)
		}
	}

	w.res.Order = append(w.res.Order, r)
	return nil
}
