package tbs

// CardinalityVariant selects how the weight-k constraint on the
// candidate input x is encoded.
type CardinalityVariant int

const (
	// SinzCounter uses satenc.BuildSinzExactly, a monotone sequential
	// counter (§4.H's default).
	SinzCounter CardinalityVariant = iota

	// PairwiseSorter uses satenc.BuildPairwiseAtMost on both x and its
	// complement, the alternative §4.H names for non-monotone weight
	// probing.
	PairwiseSorter
)

// Options configures Synthesize.
type Options struct {
	// Cardinality selects the weight-k encoding.
	Cardinality CardinalityVariant
}

// DefaultOptions returns the Sinz-counter variant.
func DefaultOptions() Options {
	return Options{Cardinality: SinzCounter}
}

// Option mutates an Options value.
type Option func(*Options)

// WithCardinality selects the weight-k cardinality encoding.
func WithCardinality(v CardinalityVariant) Option {
	return func(o *Options) { o.Cardinality = v }
}
