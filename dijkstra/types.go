package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by level computation.
var (
	// ErrNilArena indicates a nil *dag.Arena was passed.
	ErrNilArena = errors.New("dijkstra: arena is nil")

	// ErrBadMaxLevel indicates MaxLevel was set to a negative value.
	ErrBadMaxLevel = errors.New("dijkstra: MaxLevel must be non-negative")
)

// Options configures level computation.
type Options struct {
	// MaxLevel caps exploration: nodes whose arrival level would exceed
	// this are reported at MaxLevel instead of their true (possibly
	// deeper) value. Default is math.MaxInt64 (no cap).
	MaxLevel int64
}

// Option is a functional option for level computation.
type Option func(*Options)

// DefaultOptions returns Options with no level cap.
func DefaultOptions() Options {
	return Options{MaxLevel: math.MaxInt64}
}

// WithMaxLevel caps the arrival level computation at the given bound.
// Panics with ErrBadMaxLevel if max is negative, matching the teacher's
// convention of failing fast on malformed functional-option arguments.
func WithMaxLevel(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxLevel.Error())
	}
	return func(o *Options) {
		o.MaxLevel = max
	}
}
