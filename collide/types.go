// Package collide defines the Surface query interface, the Hit result, and
// the resolver options.
package collide

import (
	"errors"

	"github.com/ungerik/go3d/float64/vec3"
)

// Sentinel errors for collision resolution.
var (
	// ErrNilSurface indicates Resolve received no body surface to query.
	ErrNilSurface = errors.New("collide: body surface is nil")

	// ErrBadClearance indicates a non-positive minimum clearance option.
	ErrBadClearance = errors.New("collide: minimum clearance must be positive")
)

// Default resolver constants.
const (
	// DefaultMinClearance is the final-resolution minimum garment-body gap
	// in meters.
	DefaultMinClearance = 0.015

	// DefaultElasticity is the overshoot factor applied to the push-out
	// correction.
	DefaultElasticity = 1.2

	// rayEpsilon rejects intersections at (numerically) zero distance and
	// near-parallel rays in the Möller–Trumbore test.
	rayEpsilon = 1e-9
)

// Hit is the nearest intersection found along a ray.
type Hit struct {
	// Distance from the ray origin to the intersection point, in meters
	// (the ray direction is unit length).
	Distance float64

	// Triangle is the index of the intersected body triangle.
	Triangle int
}

// Surface answers nearest-surface-along-ray queries against a body mesh.
// It is the pluggable seam between draping/collision logic and spatial
// acceleration: swap in a different index without touching the callers.
//
// NearestAlongRay returns the closest intersection within maxDist of origin
// in direction dir (unit length), or (Hit{}, false) when nothing is hit —
// a normal outcome, never an error. Implementations must be safe for
// concurrent readers once built.
type Surface interface {
	NearestAlongRay(origin, dir *vec3.T, maxDist float64) (Hit, bool)
}

// Options configures Resolve.
type Options struct {
	// MinClearance is the smallest allowed garment-body distance.
	MinClearance float64

	// Elasticity multiplies the push-out correction.
	Elasticity float64
}

// Option is a functional option for Resolve.
type Option func(*Options)

// WithMinClearance overrides the minimum clearance. Panics on non-positive
// values, matching the option-constructor convention for programmer errors.
func WithMinClearance(meters float64) Option {
	return func(o *Options) {
		if meters <= 0 {
			panic(ErrBadClearance.Error())
		}
		o.MinClearance = meters
	}
}

// WithElasticity overrides the push-out overshoot factor.
func WithElasticity(factor float64) Option {
	return func(o *Options) { o.Elasticity = factor }
}

// DefaultOptions returns the final-resolution defaults.
func DefaultOptions() Options {
	return Options{
		MinClearance: DefaultMinClearance,
		Elasticity:   DefaultElasticity,
	}
}
