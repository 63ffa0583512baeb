package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Validate checks the mesh invariants required by the fitting stages.
//
// Checks (in order):
//  1. The mesh pointer is non-nil (ErrNilMesh).
//  2. The mesh has at least one vertex (ErrEmptyMesh).
//  3. The mesh is indexed, i.e. has a triangle list (ErrNotIndexed).
//  4. Normals, if present, pair one-to-one with positions (ErrNormalCount).
//  5. Every triangle index is in [0, len(Positions)) (ErrIndexRange).
//
// Complexity: O(T)
func (m *Mesh) Validate() error {
	// 1) Reject nil receivers; every stage calls Validate first, so this is
	//    the single fail-fast point for nil meshes.
	if m == nil {
		return ErrNilMesh
	}

	// 2) A mesh without vertices has no geometry to operate on.
	if len(m.Positions) == 0 {
		return ErrEmptyMesh
	}

	// 3) An unindexed mesh cannot drive region selection, adjacency
	//    building, or smoothing. Fail fast, no partial output.
	if len(m.Triangles) == 0 {
		return ErrNotIndexed
	}

	// 4) Normals are optional until RecomputeNormals, but a mismatched
	//    buffer means the (position, normal) pairing is broken.
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normals for %d vertices", ErrNormalCount, len(m.Normals), len(m.Positions))
	}

	// 5) Scan the index list for out-of-range references.
	n := len(m.Positions)
	var t Tri
	var ti int
	for ti, t = range m.Triangles {
		for _, idx := range t {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: triangle %d references vertex %d (mesh has %d)", ErrIndexRange, ti, idx, n)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the mesh with freshly allocated buffers.
// Mutating the clone never affects the source; concurrent fitting
// invocations rely on this to avoid sharing mutable buffers.
//
// Complexity: O(V + T)
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}

	clone := &Mesh{
		Positions: make([]vec3.T, len(m.Positions)),
		Triangles: make([]Tri, len(m.Triangles)),
	}
	copy(clone.Positions, m.Positions)
	copy(clone.Triangles, m.Triangles)

	if len(m.Normals) != 0 {
		clone.Normals = make([]vec3.T, len(m.Normals))
		copy(clone.Normals, m.Normals)
	}

	return clone
}

// RecomputeNormals rebuilds per-vertex normals from the triangle list.
//
// Each triangle contributes its unnormalized cross product (area-weighted
// normal) to its three corners; every accumulated vector is then normalized.
// Vertices referenced by no triangle, and degenerate triangles with zero
// area, leave a zero normal rather than NaN.
//
// Complexity: O(V + T)
func (m *Mesh) RecomputeNormals() {
	// 1) Reset the accumulation buffer, reusing it when already sized.
	if len(m.Normals) != len(m.Positions) {
		m.Normals = make([]vec3.T, len(m.Positions))
	} else {
		for i := range m.Normals {
			m.Normals[i] = vec3.Zero
		}
	}

	// 2) Accumulate area-weighted triangle normals at each corner.
	//    The cross-product magnitude is twice the triangle area, so larger
	//    faces weigh more — the usual smooth-shading behavior.
	var e1, e2, n vec3.T
	for _, t := range m.Triangles {
		p0 := &m.Positions[t[0]]
		p1 := &m.Positions[t[1]]
		p2 := &m.Positions[t[2]]

		e1 = vec3.Sub(p1, p0)
		e2 = vec3.Sub(p2, p0)
		n = vec3.Cross(&e1, &e2)

		m.Normals[t[0]].Add(&n)
		m.Normals[t[1]].Add(&n)
		m.Normals[t[2]].Add(&n)
	}

	// 3) Normalize. Zero-length accumulations (unreferenced vertices,
	//    degenerate faces) stay zero instead of dividing by zero.
	for i := range m.Normals {
		if m.Normals[i].LengthSqr() > 0 {
			m.Normals[i].Normalize()
		}
	}
}
