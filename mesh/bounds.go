package mesh

import (
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/floats/scalar"
)

// degenerateTol is the absolute tolerance below which a bounding-box extent
// counts as zero. Stage computations divide by height and width, so a box
// this thin would propagate NaN/Infinity into the garment mesh.
const degenerateTol = 1e-9

// Bounds is an axis-aligned bounding box. The zero value is not meaningful;
// obtain one from Mesh.Bounds or build it incrementally with Add.
type Bounds struct {
	Min, Max vec3.T

	initialized bool
}

// Add expands the box to contain point, initializing the box on first use.
func (b *Bounds) Add(point *vec3.T) {
	if !b.initialized {
		b.Min = *point
		b.Max = *point
		b.initialized = true

		return
	}

	for i, v := range point {
		if v < b.Min[i] {
			b.Min[i] = v
		}
		if v > b.Max[i] {
			b.Max[i] = v
		}
	}
}

// Width is the x extent of the box.
func (b Bounds) Width() float64 { return b.Max[0] - b.Min[0] }

// Height is the y extent of the box.
func (b Bounds) Height() float64 { return b.Max[1] - b.Min[1] }

// Depth is the z extent of the box.
func (b Bounds) Depth() float64 { return b.Max[2] - b.Min[2] }

// MinY is the lowest y coordinate of the box (the ground line for a
// reference-pose body mesh).
func (b Bounds) MinY() float64 { return b.Min[1] }

// CenterX is the x coordinate of the box center, used as the vertical
// body axis together with CenterZ.
func (b Bounds) CenterX() float64 { return (b.Min[0] + b.Max[0]) / 2 }

// CenterZ is the z coordinate of the box center.
func (b Bounds) CenterZ() float64 { return (b.Min[2] + b.Max[2]) / 2 }

// AxisDistance is the horizontal distance of point from the vertical body
// axis (the line through the box center parallel to y).
func (b Bounds) AxisDistance(point *vec3.T) float64 {
	dx := point[0] - b.CenterX()
	dz := point[2] - b.CenterZ()

	v := vec3.T{dx, 0, dz}

	return v.Length()
}

// HeightFrac returns y expressed as a fraction of the box height:
// 0 at the bottom of the box, 1 at the top. Callers must reject degenerate
// bounds before dividing; see Degenerate.
func (b Bounds) HeightFrac(y float64) float64 {
	return (y - b.Min[1]) / b.Height()
}

// Degenerate reports whether the box has (near-)zero height or width.
// All stage computations divide by these extents, so a degenerate box must
// fail fast rather than silently propagate NaN/Infinity.
func (b Bounds) Degenerate() bool {
	return scalar.EqualWithinAbs(b.Height(), 0, degenerateTol) ||
		scalar.EqualWithinAbs(b.Width(), 0, degenerateTol)
}

// Bounds computes the axis-aligned bounding box of the mesh vertices.
// Returns ErrNilMesh or ErrEmptyMesh when there is nothing to bound.
//
// Complexity: O(V)
func (m *Mesh) Bounds() (Bounds, error) {
	if m == nil {
		return Bounds{}, ErrNilMesh
	}
	if len(m.Positions) == 0 {
		return Bounds{}, ErrEmptyMesh
	}

	var b Bounds
	for i := range m.Positions {
		b.Add(&m.Positions[i])
	}

	return b, nil
}
