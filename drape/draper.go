package drape

import (
	"fmt"

	"github.com/vponomar/fitweave/collide"
	"github.com/vponomar/fitweave/mesh"
)

// Draper runs the draping passes over one garment mesh. It carries the
// explicit shared state every pass needs (body bounds for normalized heights
// and the vertical axis, the torso band for ease blending, the body surface
// for inward raycasts) so the pass methods stay small and ordered.
//
// A Draper mutates only the garment it was built around. It is not safe for
// concurrent use; build one per fitting.
type Draper struct {
	garment *mesh.Mesh
	bounds  mesh.Bounds
	band    Band
	surf    collide.Surface
}

// NewDraper validates the inputs and binds the pass runner to the garment.
// The band must have positive extent and the surface must be non-nil, since
// the stretch and wrinkle passes raycast against it.
func NewDraper(garment *mesh.Mesh, bounds mesh.Bounds, band Band, surf collide.Surface) (*Draper, error) {
	if surf == nil {
		return nil, ErrNilSurface
	}
	if band.TopY <= band.BottomY {
		return nil, fmt.Errorf("%w: bottom %.4f, top %.4f", ErrBadBand, band.BottomY, band.TopY)
	}
	if err := garment.Validate(); err != nil {
		return nil, fmt.Errorf("drape: %w", err)
	}
	if len(garment.Normals) != len(garment.Positions) {
		garment.RecomputeNormals()
	}

	return &Draper{garment: garment, bounds: bounds, band: band, surf: surf}, nil
}

// bandFrac maps a world y to the torso-band parameter u: 0 at the hem,
// 1 at the shoulder line, clamped.
func (d *Draper) bandFrac(y float64) float64 {
	u := (y - d.band.BottomY) / (d.band.TopY - d.band.BottomY)

	return min(max(u, 0), 1)
}

// blendEase interpolates the regional eases along the band parameter:
// waist→chest over the lower half, chest→shoulder over (0.5, 0.8], pure
// shoulder above. Piecewise linear and continuous at the joints.
func blendEase(u float64, eases Eases) float64 {
	switch {
	case u > 0.8:
		return eases.Shoulder
	case u > 0.5:
		f := (u - 0.5) / 0.3

		return eases.Chest + (eases.Shoulder-eases.Chest)*f
	default:
		f := u / 0.5

		return eases.Waist + (eases.Chest-eases.Waist)*f
	}
}

// Offset inflates the garment away from the body along vertex normals.
//
// Per vertex:
//  1. Blend the regional eases by band height (see blendEase).
//  2. A negative blend (garment smaller than body) collapses to the minimum
//     clearance; positive blends clamp into [MinClearance, MaxClearance].
//  3. Loose garments (offset > LooseThreshold) get boxiness shaping: the
//     offset scales by 0.6 + 0.4 × radial position, so fabric stands away
//     from the sides more than from the front/back center line, then
//     re-clamps to at least the minimum clearance.
//  4. The vertex moves by offset along its normal.
//
// Normals are recomputed afterwards.
func (d *Draper) Offset(eases Eases) error {
	halfWidth := d.bounds.Width() / 2

	for i := range d.garment.Positions {
		pos := &d.garment.Positions[i]

		// 1) regional ease for this height
		offset := blendEase(d.bandFrac(pos[1]), eases)

		// 2) clamp into the wearable range
		if offset < 0 {
			offset = MinClearance
		} else {
			offset = min(max(offset, MinClearance), MaxClearance)
		}

		// 3) boxiness shaping for loose fits only
		if offset > LooseThreshold {
			radial := min(d.bounds.AxisDistance(pos)/halfWidth, 1)
			offset *= BoxinessBase + BoxinessSpan*radial
			offset = max(offset, MinClearance)
		}

		// 4) inflate along the normal
		step := d.garment.Normals[i].Scaled(offset)
		pos.Add(&step)
	}

	d.garment.RecomputeNormals()

	return nil
}
