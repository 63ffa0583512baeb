// Package smooth defines the Laplacian smoother options.
package smooth

import "errors"

// Sentinel errors for option validation. They surface through panics in the
// option constructors, matching the convention for programmer errors.
var (
	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("smooth: iterations must be non-negative")

	// ErrBadLambda indicates a relaxation factor outside [0, 1].
	ErrBadLambda = errors.New("smooth: lambda must be in [0, 1]")
)

// Defaults for the smoother.
const (
	// DefaultIterations is the number of relaxation sweeps.
	DefaultIterations = 2

	// DefaultLambda is the relaxation factor toward the neighbor centroid.
	DefaultLambda = 0.5
)

// Options configures Laplacian.
type Options struct {
	// Iterations is the number of full relaxation sweeps. Zero means the
	// smoother is the identity.
	Iterations int

	// Lambda blends each vertex toward its neighbor centroid: 0 keeps the
	// vertex, 1 snaps it onto the centroid.
	Lambda float64
}

// Option is a functional option for Laplacian.
type Option func(*Options)

// WithIterations overrides the sweep count. Panics on negative counts.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadIterations.Error())
		}
		o.Iterations = n
	}
}

// WithLambda overrides the relaxation factor. Panics outside [0, 1].
func WithLambda(l float64) Option {
	return func(o *Options) {
		if l < 0 || l > 1 {
			panic(ErrBadLambda.Error())
		}
		o.Lambda = l
	}
}

// DefaultOptions returns the garment-pipeline defaults.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Lambda:     DefaultLambda,
	}
}
