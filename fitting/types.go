// Package fitting defines the pipeline options and the Fit result carrier.
package fitting

import (
	"github.com/vponomar/fitweave/collide"
	"github.com/vponomar/fitweave/drape"
	"github.com/vponomar/fitweave/fitment"
	"github.com/vponomar/fitweave/mesh"
	"github.com/vponomar/fitweave/region"
	"github.com/vponomar/fitweave/smooth"
)

// Options configures one Fit invocation.
type Options struct {
	// Fabric selects the garment weight class for the draping passes.
	Fabric drape.Fabric

	// Region options forward to region.Select (band, neck, garment kind).
	Region []region.Option

	// Smooth options forward to smooth.Laplacian.
	Smooth []smooth.Option

	// Surface answers collision queries. Nil means Fit builds a BVH over
	// the body mesh; supply a prebuilt one when fitting many garments
	// against the same body.
	Surface collide.Surface

	// MinClearance is the final-resolution garment-body gap in meters.
	MinClearance float64

	// Effects toggles the aesthetic passes (stretch, weight, seams,
	// wrinkles). Inflation, collision resolution and smoothing always run.
	Effects bool

	// Smoothing toggles the final Laplacian pass.
	Smoothing bool
}

// Option is a functional option for Fit.
type Option func(*Options)

// WithFabric selects the fabric weight class.
func WithFabric(f drape.Fabric) Option {
	return func(o *Options) { o.Fabric = f }
}

// WithRegionOptions forwards options to the garment-region selection.
func WithRegionOptions(opts ...region.Option) Option {
	return func(o *Options) { o.Region = append(o.Region, opts...) }
}

// WithSmoothOptions forwards options to the final smoothing pass.
func WithSmoothOptions(opts ...smooth.Option) Option {
	return func(o *Options) { o.Smooth = append(o.Smooth, opts...) }
}

// WithSurface supplies a prebuilt collision surface for the body.
func WithSurface(s collide.Surface) Option {
	return func(o *Options) { o.Surface = s }
}

// WithMinClearance overrides the final-resolution clearance. Panics on
// non-positive values, matching the option-constructor convention for
// programmer errors.
func WithMinClearance(meters float64) Option {
	return func(o *Options) {
		if meters <= 0 {
			panic(collide.ErrBadClearance.Error())
		}
		o.MinClearance = meters
	}
}

// WithoutEffects skips the aesthetic draping passes, leaving inflation,
// collision resolution and smoothing. Useful for clearance-only fittings.
func WithoutEffects() Option {
	return func(o *Options) { o.Effects = false }
}

// WithoutSmoothing skips the final Laplacian pass.
func WithoutSmoothing() Option {
	return func(o *Options) { o.Smoothing = false }
}

// DefaultOptions returns the standard pipeline configuration: medium fabric,
// all passes enabled, final clearance from the collision resolver defaults.
func DefaultOptions() Options {
	return Options{
		Fabric:       drape.Medium,
		MinClearance: collide.DefaultMinClearance,
		Effects:      true,
		Smoothing:    true,
	}
}

// Result carries the two pipeline outputs: the draped garment mesh and the
// measurement-level fit report.
type Result struct {
	// Garment is the fitted garment mesh, exclusively owned by the caller.
	Garment *mesh.Mesh

	// Report is the per-region fit analysis and recommendation text.
	Report *fitment.Report
}
