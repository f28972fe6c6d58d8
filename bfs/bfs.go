package bfs

import (
	"fmt"

	"github.com/lsynth/lsynth/dag"
)

type queueItem struct {
	ref       dag.Ref
	depth     int
	parent    dag.Ref
	hasParent bool
}

type walker struct {
	arena   *dag.Arena
	opts    Options
	queue   []queueItem
	visited map[dag.Ref]bool
	res     *Result
}

// Run performs breadth-first frontier traversal over a's fanin structure
// starting at start, applying any number of functional Options.
func Run(a *dag.Arena, start dag.Ref, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrArenaNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == dag.NullRef || int(start) >= a.NumNodes() {
		return nil, ErrStartRefInvalid
	}

	w := &walker{
		arena:   a,
		opts:    o,
		queue:   make([]queueItem, 0, a.NumNodes()),
		visited: make(map[dag.Ref]bool, a.NumNodes()),
		res: &Result{
			Order:  make([]dag.Ref, 0, a.NumNodes()),
			Depth:  make(map[dag.Ref]int, a.NumNodes()),
			Parent: make(map[dag.Ref]dag.Ref, a.NumNodes()),
		},
	}

	w.enqueue(start, 0, dag.NullRef, false)
	return w.res, w.loop()
}

func (w *walker) enqueue(r dag.Ref, depth int, parent dag.Ref, hasParent bool) {
	w.visited[r] = true
	w.res.Depth[r] = depth
	if hasParent {
		w.res.Parent[r] = parent
	}
	w.opts.OnEnqueue(r, depth)
	w.queue = append(w.queue, queueItem{ref: r, depth: depth, parent: parent, hasParent: hasParent})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueFanins(item)
	}
	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.ref, item.depth)
	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.ref)
	if err := w.opts.OnVisit(item.ref, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at ref %d: %w", item.ref, err)
	}
	return nil
}

func (w *walker) enqueueFanins(item queueItem) {
	for _, fanin := range w.arena.Fanins(item.ref) {
		child := fanin.Node
		if !w.opts.FilterFanin(item.ref, child) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		if !w.visited[child] {
			w.enqueue(child, nextDepth, item.ref, true)
		}
	}
}
