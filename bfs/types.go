package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/lsynth/lsynth/dag"
)

// Sentinel errors for BFS execution.
var (
	// ErrArenaNil is returned if a nil arena pointer is passed.
	ErrArenaNil = errors.New("bfs: arena is nil")

	// ErrStartRefInvalid is returned when the start ref does not name a
	// live node in the arena.
	ErrStartRefInvalid = errors.New("bfs: start ref invalid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue runs when a ref is enqueued, before it is visited.
	OnEnqueue func(r dag.Ref, depth int)

	// OnDequeue runs immediately before a ref is visited.
	OnDequeue func(r dag.Ref, depth int)

	// OnVisit runs when a ref is visited. Returning an error aborts Run.
	OnVisit func(r dag.Ref, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterFanin skips a fanin edge when it returns false, given the
	// current ref and the candidate fanin.
	FilterFanin func(curr, fanin dag.Ref) bool

	err error
}

// DefaultOptions returns an Options with background context, no depth
// limit, no filtering, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnEnqueue:   func(dag.Ref, int) {},
		OnDequeue:   func(dag.Ref, int) {},
		OnVisit:     func(dag.Ref, int) error { return nil },
		FilterFanin: func(_, _ dag.Ref) bool { return true },
	}
}

// WithContext sets a custom cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run on enqueue.
func WithOnEnqueue(fn func(r dag.Ref, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run on dequeue.
func WithOnDequeue(fn func(r dag.Ref, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback run on visit; an error from it aborts Run.
func WithOnVisit(fn func(r dag.Ref, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: invalid, surfaces ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterFanin skips fanins for which fn returns false.
func WithFilterFanin(fn func(curr, fanin dag.Ref) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterFanin = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists refs in visit (dequeue) order.
	Order []dag.Ref

	// Depth maps a ref to its distance (in fanin hops) from the root.
	Depth map[dag.Ref]int

	// Parent maps a ref to the ref that first enqueued it.
	Parent map[dag.Ref]dag.Ref
}

// PathTo reconstructs the path from the traversal root to dest, root first.
func (r *Result) PathTo(dest dag.Ref) ([]dag.Ref, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to ref %d", dest)
	}
	var path []dag.Ref
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
