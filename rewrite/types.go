package rewrite

import (
	"sync"

	"github.com/lsynth/lsynth/xmg"
)

// Options configures Rewrite's cut selection.
type Options struct {
	// MinLeaves/MaxLeaves bound which of a node's enumerated cuts are
	// considered for rewriting. MaxLeaves should not exceed 6, matching
	// ttable.Canonicalize's brute-force ceiling.
	MinLeaves int
	MaxLeaves int
}

// DefaultOptions returns MinLeaves=2, MaxLeaves=6.
func DefaultOptions() Options {
	return Options{MinLeaves: 2, MaxLeaves: 6}
}

// Option mutates an Options value.
type Option func(*Options)

// WithMinLeaves sets the smallest cut size considered for rewriting.
func WithMinLeaves(k int) Option { return func(o *Options) { o.MinLeaves = k } }

// WithMaxLeaves sets the largest cut size considered for rewriting.
func WithMaxLeaves(k int) Option { return func(o *Options) { o.MaxLeaves = k } }

// Stats summarizes one Rewrite pass.
type Stats struct {
	NodesBefore   int
	NodesAfter    int
	CutsRewritten int
	GatesSaved    int
}

// Cache maps NPN-canonical-class truth tables to a minimum-gate-count XMG
// template realizing that class, synthesized once via exact.Synthesize
// and reused by every cut that canonicalizes to the same class. Safe for
// concurrent use.
type Cache struct {
	mu        sync.Mutex
	templates map[string]*xmg.XMG
}

// NewCache returns an empty template cache.
func NewCache() *Cache {
	return &Cache{templates: make(map[string]*xmg.XMG)}
}
