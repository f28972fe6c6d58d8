package dfs

import (
	"context"
	"errors"

	"github.com/lsynth/lsynth/dag"
)

// State is the three-color visitation marker used by Walk and DetectCycle.
type State int

const (
	White State = iota // not yet visited
	Gray               // on the current recursion stack
	Black              // fully explored
)

var (
	// ErrArenaNil is returned when a nil *dag.Arena is passed to Walk or
	// DetectCycle.
	ErrArenaNil = errors.New("dfs: arena is nil")

	// ErrStartRefInvalid indicates the requested start ref does not name
	// a live node in the arena.
	ErrStartRefInvalid = errors.New("dfs: start ref invalid")

	// ErrCycleDetected indicates DetectCycle found a back-edge in the
	// arena's fanin structure, violating the DAG invariant.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures Walk's traversal behavior.
type Option func(*Options)

// Options holds the configurable parameters of a Walk call.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a ref is first discovered (pre-order).
	// Returning an error aborts the walk.
	OnVisit func(r dag.Ref) error

	// OnExit, if non-nil, runs after all of a ref's fanins have been
	// explored (post-order), before it is appended to Result.Order.
	OnExit func(r dag.Ref) error

	// MaxDepth, if non-negative, stops recursion beyond this depth.
	MaxDepth int

	// FilterFanin, if non-nil, is consulted before descending into each
	// fanin; returning false skips that fanin and counts it in
	// Result.SkippedFanins.
	FilterFanin func(r dag.Ref) bool

	// FullWalk, if true, starts from every arena PO instead of the start
	// ref (which is then ignored), covering every node some PO depends
	// on in one pass. Nodes no PO depends on are not visited.
	FullWalk bool
}

// DefaultOptions returns the zero-configuration Options: background
// context, no hooks, no depth limit, no filtering, single-root walk.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(r dag.Ref) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(r dag.Ref) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion to the given depth (0 visits only the root).
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterFanin installs a fanin filter.
func WithFilterFanin(fn func(r dag.Ref) bool) Option {
	return func(o *Options) { o.FilterFanin = fn }
}

// WithFullWalk enables multi-root traversal from every PO.
func WithFullWalk() Option {
	return func(o *Options) { o.FullWalk = true }
}

// Result captures the outcome of a Walk.
type Result struct {
	// Order lists refs in post-order (finish order).
	Order []dag.Ref

	// Depth maps a ref to its distance from the nearest walk root that
	// discovered it.
	Depth map[dag.Ref]int

	// Parent maps a ref to the ref that first discovered it.
	Parent map[dag.Ref]dag.Ref

	// Visited flags every ref reached during the walk.
	Visited map[dag.Ref]bool

	// SkippedFanins counts fanins skipped by FilterFanin.
	SkippedFanins int
}
