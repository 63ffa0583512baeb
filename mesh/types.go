// Package mesh defines the central Mesh and Tri types used by every
// fitting stage, plus the sentinel errors for mesh invariant violations.
//
// A Mesh must be indexed (shared vertices referenced by triangles, not
// per-triangle duplicates) before it can be used for region selection,
// adjacency building, or smoothing. Validate enforces that invariant.
package mesh

import (
	"errors"

	"github.com/ungerik/go3d/float64/vec3"
)

// Sentinel errors for mesh invariant violations.
var (
	// ErrNilMesh indicates that a nil *Mesh was passed to an operation.
	ErrNilMesh = errors.New("mesh: mesh is nil")

	// ErrEmptyMesh indicates that the mesh contains no vertices.
	ErrEmptyMesh = errors.New("mesh: mesh has no vertices")

	// ErrNotIndexed indicates that the mesh lacks a triangle index list.
	// Region selection, adjacency building and smoothing all require one.
	ErrNotIndexed = errors.New("mesh: mesh is not indexed (no triangles)")

	// ErrIndexRange indicates that a triangle references a vertex index
	// outside [0, len(Positions)).
	ErrIndexRange = errors.New("mesh: triangle vertex index out of range")

	// ErrNormalCount indicates that the normal buffer is non-empty but does
	// not pair one-to-one with the position buffer.
	ErrNormalCount = errors.New("mesh: normal count does not match vertex count")
)

// Tri is a triangle: three indices into a mesh's vertex buffers.
type Tri [3]int

// Mesh is an indexed triangle mesh: an ordered sequence of exclusively-owned
// (position, normal) pairs plus an ordered sequence of triangles.
//
// Coordinates are in meters, y-up, y=0 at ground (the body-model service
// convention). Normals, when present, pair one-to-one with positions and are
// expected to be unit length; RecomputeNormals restores both properties.
type Mesh struct {
	// Positions holds one 3D point per vertex.
	Positions []vec3.T

	// Normals holds one unit vector per vertex. May be empty until
	// RecomputeNormals is called; never shorter or longer than Positions
	// when non-empty.
	Normals []vec3.T

	// Triangles is the index list. Every index must be in range.
	Triangles []Tri
}

// New constructs a Mesh from the given buffers without copying them.
// The caller transfers ownership of the slices to the mesh.
func New(positions, normals []vec3.T, triangles []Tri) *Mesh {
	return &Mesh{Positions: positions, Normals: normals, Triangles: triangles}
}
