// Package region defines the selector options, garment-kind presets, and
// sentinel errors for torso-region selection.
package region

import "errors"

// Sentinel errors for region selection.
var (
	// ErrDegenerate indicates the body bounding box has (near-)zero height
	// or width; every selector computation divides by these extents.
	ErrDegenerate = errors.New("region: degenerate body bounding box")

	// ErrEmptyRegion indicates that no triangle survived the filter, so no
	// garment submesh can be built.
	ErrEmptyRegion = errors.New("region: no triangles in selected region")

	// ErrBadBand indicates a band option with bottom ≥ top or values
	// outside [0, 1].
	ErrBadBand = errors.New("region: torso band must satisfy 0 ≤ bottom < top ≤ 1")
)

// Default selector constants (fractions of body height unless noted).
const (
	// DefaultBottomT is the hem of the torso band.
	DefaultBottomT = 0.50

	// DefaultTopT is the top of the torso band.
	DefaultTopT = 0.85

	// DefaultNeckT is the height fraction above which the neck cut-out
	// applies.
	DefaultNeckT = 0.92

	// DefaultNeckRadius is the horizontal cut-out radius around the body
	// axis, in meters.
	DefaultNeckRadius = 0.08

	// DefaultSleeveBandLo / DefaultSleeveBandHi bound the height band in
	// which the sleeve cutoff applies.
	DefaultSleeveBandLo = 0.70
	DefaultSleeveBandHi = 0.90

	// DefaultArmSpanRatio: vertices farther than this fraction of body
	// width from the x-center count as "on the arm".
	DefaultArmSpanRatio = 0.15

	// DefaultShoulderT places the shoulder line as a fraction of body
	// height (matches the body-model service landmark).
	DefaultShoulderT = 0.82
)

// Kind is a garment-type preset. Presets only retune the torso band; every
// constant stays individually overridable.
type Kind int

const (
	// KindTShirt is the default preset: band [0.50, 0.85].
	KindTShirt Kind = iota

	// KindLongSleeve keeps the t-shirt band but expects a sleeve length,
	// extending coverage down the arm before the cutoff applies.
	KindLongSleeve

	// KindTank trims the band to [0.52, 0.85] for a closer hem.
	KindTank
)

// Options configures the selector. Zero values are invalid; start from
// DefaultOptions or use Select's functional options.
type Options struct {
	// BottomT / TopT bound the torso band in normalized body height.
	BottomT float64
	TopT    float64

	// NeckT / NeckRadius define the neck cut-out (fraction / meters).
	NeckT      float64
	NeckRadius float64

	// SleeveBandLo / SleeveBandHi bound the sleeve-cutoff height band.
	SleeveBandLo float64
	SleeveBandHi float64

	// ArmSpanRatio is the fraction of body width beyond which a vertex
	// counts as on the arm.
	ArmSpanRatio float64

	// ShoulderT locates the shoulder line in normalized body height.
	ShoulderT float64

	// SleeveLength is the garment sleeve length in meters, measured down
	// from the shoulder line. Zero disables the sleeve cutoff.
	SleeveLength float64
}

// Option is a functional option for configuring Select.
type Option func(*Options)

// WithBand overrides the torso band. Panics on an invalid band, matching
// the option-constructor convention for programmer errors.
func WithBand(bottom, top float64) Option {
	return func(o *Options) {
		if bottom < 0 || top > 1 || bottom >= top {
			panic(ErrBadBand.Error())
		}
		o.BottomT = bottom
		o.TopT = top
	}
}

// WithSleeveLength enables the sleeve cutoff with the given length in meters.
func WithSleeveLength(meters float64) Option {
	return func(o *Options) { o.SleeveLength = meters }
}

// WithNeckCutout overrides the neck cut-out threshold and radius.
func WithNeckCutout(t, radius float64) Option {
	return func(o *Options) {
		o.NeckT = t
		o.NeckRadius = radius
	}
}

// WithKind applies a garment-type preset.
func WithKind(k Kind) Option {
	return func(o *Options) {
		switch k {
		case KindTank:
			o.BottomT = 0.52
			o.TopT = DefaultTopT
		default: // KindTShirt, KindLongSleeve share the standard band
			o.BottomT = DefaultBottomT
			o.TopT = DefaultTopT
		}
	}
}

// DefaultOptions returns the t-shirt selector constants with the sleeve
// cutoff disabled.
func DefaultOptions() Options {
	return Options{
		BottomT:      DefaultBottomT,
		TopT:         DefaultTopT,
		NeckT:        DefaultNeckT,
		NeckRadius:   DefaultNeckRadius,
		SleeveBandLo: DefaultSleeveBandLo,
		SleeveBandHi: DefaultSleeveBandHi,
		ArmSpanRatio: DefaultArmSpanRatio,
		ShoulderT:    DefaultShoulderT,
		SleeveLength: 0,
	}
}
