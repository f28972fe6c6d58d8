package cut

import "github.com/lsynth/lsynth/dag"

// Cut is a k-feasible cut of some root node: LeavesID indexes the leaf
// paged set (the index-set §3 describes; the cone is not stored but
// recomputed by Manager.Cone), and RequiredLevel is the
// deepest required-level among the cut's leaves, used as the primary
// priority-sort key (larger is better: more downstream slack).
type Cut struct {
	Root          dag.Ref
	LeavesID      int
	LeafCount     int
	RequiredLevel int64
}

// Options configures a Manager.
type Options struct {
	// K is the maximum number of leaves a cut may have.
	K int

	// Priority caps how many cuts are retained per node.
	Priority int

	// IgnoreXorChains collapses maximal single-fanout XOR chains into
	// one atomic cut-enumeration unit (§4.C, XMG-only).
	IgnoreXorChains bool
}

// DefaultOptions returns K=6, Priority=8, no XOR-chain collapsing —
// reasonable general-purpose LUT-mapping defaults.
func DefaultOptions() Options {
	return Options{K: 6, Priority: 8}
}

// Option mutates an Options value.
type Option func(*Options)

// WithK sets the max leaves per cut.
func WithK(k int) Option { return func(o *Options) { o.K = k } }

// WithPriority sets the max cuts retained per node.
func WithPriority(p int) Option { return func(o *Options) { o.Priority = p } }

// WithIgnoreXorChains toggles XOR-chain collapsing.
func WithIgnoreXorChains(v bool) Option { return func(o *Options) { o.IgnoreXorChains = v } }
