package exact

import (
	"strings"
	"time"
)

// Flags are the §4.E symmetry-breaking toggles, one per letter of the
// `breaking` CLI mask (§6): C=commutativity, I=inverter canonicalization,
// s=structural hashing (gate distinctness), a=associativity (reserved
// no-op), l=co-lexicographic order (reserved no-op), t=support
// restriction, y=symmetric-variables blocker.
type Flags struct {
	Commutativity      bool
	Inverters          bool
	StructuralHashing  bool
	Associativity      bool
	Colex              bool
	SupportRestriction bool
	SymmetricBlocker   bool
}

// ParseFlags builds a Flags value from a mask string such as "CIsty",
// matching §6's `breaking` CLI option (subset of characters C,I,s,a,l,t,y).
func ParseFlags(mask string) Flags {
	var f Flags
	for _, r := range mask {
		switch r {
		case 'C':
			f.Commutativity = true
		case 'I':
			f.Inverters = true
		case 's':
			f.StructuralHashing = true
		case 'a':
			f.Associativity = true
		case 'l':
			f.Colex = true
		case 't':
			f.SupportRestriction = true
		case 'y':
			f.SymmetricBlocker = true
		}
	}
	return f
}

// String renders the mask form of f, in the canonical C,I,s,a,l,t,y order.
func (f Flags) String() string {
	var b strings.Builder
	for _, p := range []struct {
		on bool
		ch byte
	}{
		{f.Commutativity, 'C'}, {f.Inverters, 'I'}, {f.StructuralHashing, 's'},
		{f.Associativity, 'a'}, {f.Colex, 'l'}, {f.SupportRestriction, 't'}, {f.SymmetricBlocker, 'y'},
	} {
		if p.on {
			b.WriteByte(p.ch)
		}
	}
	return b.String()
}

// SymmetricPair names two input variable indices the caller has found
// symmetric in the target spec (for the `y` symmetry blocker).
type SymmetricPair struct{ P, Q int }

// Options configures Synthesize.
type Options struct {
	Start        int // initial gate count k (§6 `start`)
	MaxGates     int // budget ceiling; 0 means unbounded
	Timeout      time.Duration
	AllSolutions bool
	Breaking     Flags
	Symmetries   []SymmetricPair

	// SkipOnTimeout makes the search advance to k+1 when the solver
	// returns UNKNOWN at a given k, instead of stopping the search and
	// reporting ErrTimeout (§4.E's "skips to k+1 when the caller sets a
	// timeout-heuristic").
	SkipOnTimeout bool

	// WithXor is stored here (DefaultOptions sets it to true) but the
	// encoder does not read it: every gate's row constraints are built
	// for both the majority and the XOR variant, whatever its value.
	WithXor bool

	// Support, if non-nil, restricts which input variables may be
	// selected (the `t` flag's "non-supported input index is forbidden
	// as a selector"). nil means all NumVars variables are eligible.
	Support []bool

	// Invert flips the extracted circuit's output, for specs given in
	// complemented-normal form (§4.E's "apply invert if the spec was
	// not normal").
	Invert bool
}

// DefaultOptions returns Start=1, no gate cap, no timeout, WithXor=true,
// and the full symmetry-breaking mask "CIsty" (a, l are reserved no-ops
// regardless of their flag value).
func DefaultOptions() Options {
	return Options{
		Start:    1,
		WithXor:  true,
		Breaking: ParseFlags("CIsty"),
	}
}

// Option mutates an Options value.
type Option func(*Options)

// WithStart sets the initial gate count.
func WithStart(k int) Option { return func(o *Options) { o.Start = k } }

// WithMaxGates sets the gate-count ceiling (0 = unbounded).
func WithMaxGates(k int) Option { return func(o *Options) { o.MaxGates = k } }

// WithTimeout sets Options.Timeout. The search does not pass it to the
// SAT solver: each level's Solve call runs without a time limit.
func WithTimeout(d time.Duration) Option { return func(o *Options) { o.Timeout = d } }

// WithAllSolutions enables all-solution enumeration.
func WithAllSolutions(v bool) Option { return func(o *Options) { o.AllSolutions = v } }

// WithBreaking sets the symmetry-breaking flags.
func WithBreaking(f Flags) Option { return func(o *Options) { o.Breaking = f } }

// WithSymmetries sets the known symmetric variable pairs for the `y` flag.
func WithSymmetries(pairs []SymmetricPair) Option {
	return func(o *Options) { o.Symmetries = pairs }
}

// WithSupport restricts eligible input selectors for the `t` flag.
func WithSupport(support []bool) Option { return func(o *Options) { o.Support = support } }

// WithSkipOnTimeout sets the k+1-on-UNKNOWN timeout heuristic.
func WithSkipOnTimeout(v bool) Option { return func(o *Options) { o.SkipOnTimeout = v } }

// WithInvert flips the extracted circuit's output.
func WithInvert(v bool) Option { return func(o *Options) { o.Invert = v } }
