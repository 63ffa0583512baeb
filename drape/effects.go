package drape

import (
	"math"
)

// Stretch pulls stretch-zone fabric back toward the body. Knit fabric close
// to the skin does not stand off at the full ease distance; the pass casts a
// ray from each vertex along its negated normal and, when the body is within
// StretchRange, retracts the vertex by d × (1 − f), keeping fraction f of the
// gap. The torso holds more of its ease (f = 0.7) than the shoulder cap
// (f = 0.5), where fabric hugs the body.
func (d *Draper) Stretch() error {
	for i := range d.garment.Positions {
		dir := d.garment.Normals[i].Scaled(-1)
		if dir.LengthSqr() == 0 {
			continue
		}
		dir.Normalize()

		hit, ok := d.surf.NearestAlongRay(&d.garment.Positions[i], &dir, StretchRange)
		if !ok {
			continue // body too far away, no stretch tension here
		}

		factor := StretchTorso
		if t := d.heightFrac(d.garment.Positions[i][1]); t >= ShoulderBandT {
			factor = StretchShoulder
		}

		pull := dir.Scaled(hit.Distance * (1 - factor))
		d.garment.Positions[i].Add(&pull)
	}

	d.garment.RecomputeNormals()

	return nil
}

// Weight sags the garment under gravity. The drop grows toward the hem
// (1 − t over normalized body height) and away from the body axis, where
// fabric hangs unsupported, scaled by the fabric's weight factor.
func (d *Draper) Weight(fabric Fabric) error {
	wf := fabric.WeightFactor()

	for i := range d.garment.Positions {
		pos := &d.garment.Positions[i]
		t := d.heightFrac(pos[1])
		pos[1] -= wf * (1 - t) * (1 + 0.3*d.bounds.AxisDistance(pos))
	}

	d.garment.RecomputeNormals()

	return nil
}

// Seams applies seam tension. Vertices within SeamShoulderRange of the
// shoulder line contract horizontally toward the body axis by the shoulder
// scale; vertices whose azimuth falls within SeamSideAzimuth of ±90° (the
// side-seam lines) pull a fixed SeamSidePull toward the axis.
func (d *Draper) Seams(shoulderY float64) error {
	cx, cz := d.bounds.CenterX(), d.bounds.CenterZ()

	for i := range d.garment.Positions {
		pos := &d.garment.Positions[i]
		dx, dz := pos[0]-cx, pos[2]-cz

		// shoulder seam: contract in the horizontal plane
		if math.Abs(pos[1]-shoulderY) < SeamShoulderRange {
			pos[0] = cx + dx*SeamShoulderScale
			pos[2] = cz + dz*SeamShoulderScale

			continue
		}

		// side seams: fixed inward pull along the radial direction
		r := math.Hypot(dx, dz)
		if r < 1e-9 {
			continue // on the axis, no radial direction
		}
		azimuth := math.Atan2(dz, dx)
		if math.Abs(azimuth-math.Pi/2) < SeamSideAzimuth ||
			math.Abs(azimuth+math.Pi/2) < SeamSideAzimuth {
			pos[0] -= dx / r * SeamSidePull
			pos[2] -= dz / r * SeamSidePull
		}
	}

	d.garment.RecomputeNormals()

	return nil
}

// Wrinkles adds a tangential micro-perturbation where fabric sits close to
// the body. The wrinkle factor grades by inward raycast distance (full below
// WrinkleNear, half below WrinkleFar, none beyond), and the displacement runs
// along the horizontal tangent (−nz, 0, nx) with a fixed interference pattern
//
//	sin(40x + 30z) · cos(35y) · sin(60x)
//
// so neighboring vertices shift in opposite directions and fold.
func (d *Draper) Wrinkles() error {
	for i := range d.garment.Positions {
		n := &d.garment.Normals[i]

		tangent := [3]float64{-n[2], 0, n[0]}
		tl := math.Hypot(tangent[0], tangent[2])
		if tl < 1e-9 {
			continue // normal is vertical, no horizontal tangent
		}

		dir := n.Scaled(-1)
		if dir.LengthSqr() == 0 {
			continue
		}
		dir.Normalize()

		hit, ok := d.surf.NearestAlongRay(&d.garment.Positions[i], &dir, WrinkleFar)
		if !ok {
			continue // fabric hangs free, no wrinkling
		}
		factor := 0.5
		if hit.Distance < WrinkleNear {
			factor = 1.0
		}

		pos := &d.garment.Positions[i]
		mag := math.Sin(40*pos[0]+30*pos[2]) *
			math.Cos(35*pos[1]) *
			math.Sin(60*pos[0]) *
			WrinkleAmplitude * factor

		pos[0] += tangent[0] / tl * mag
		pos[2] += tangent[2] / tl * mag
	}

	d.garment.RecomputeNormals()

	return nil
}

// heightFrac is the vertex height normalized over the body bounds, clamped
// to [0, 1].
func (d *Draper) heightFrac(y float64) float64 {
	return min(max(d.bounds.HeightFrac(y), 0), 1)
}
