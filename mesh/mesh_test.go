package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/vponomar/fitweave/mesh"
)

// quad returns a flat unit quad in the xz-plane (y=0) made of two triangles.
// With winding (0,1,2)/(0,2,3) the face normal points along -y.
func quad() *mesh.Mesh {
	return mesh.New(
		[]vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		nil,
		[]mesh.Tri{{0, 1, 2}, {0, 2, 3}},
	)
}

// TestValidate_NilMesh verifies that a nil mesh is rejected with ErrNilMesh.
func TestValidate_NilMesh(t *testing.T) {
	var m *mesh.Mesh
	assert.ErrorIs(t, m.Validate(), mesh.ErrNilMesh, "nil mesh must fail fast")
}

// TestValidate_EmptyMesh verifies that a vertex-less mesh is rejected.
func TestValidate_EmptyMesh(t *testing.T) {
	m := mesh.New(nil, nil, nil)
	assert.ErrorIs(t, m.Validate(), mesh.ErrEmptyMesh, "empty mesh must fail fast")
}

// TestValidate_NotIndexed verifies that a mesh without triangles is rejected,
// since region selection, adjacency and smoothing all require an index list.
func TestValidate_NotIndexed(t *testing.T) {
	m := mesh.New([]vec3.T{{0, 0, 0}}, nil, nil)
	assert.ErrorIs(t, m.Validate(), mesh.ErrNotIndexed, "unindexed mesh must fail fast")
}

// TestValidate_IndexRange verifies that out-of-range triangle indices are
// reported with ErrIndexRange.
func TestValidate_IndexRange(t *testing.T) {
	m := quad()
	m.Triangles = append(m.Triangles, mesh.Tri{0, 1, 99})
	assert.ErrorIs(t, m.Validate(), mesh.ErrIndexRange, "index 99 is out of range")
}

// TestValidate_NormalCount verifies that a mismatched normal buffer is
// reported with ErrNormalCount.
func TestValidate_NormalCount(t *testing.T) {
	m := quad()
	m.Normals = []vec3.T{{0, 1, 0}} // 1 normal for 4 vertices
	assert.ErrorIs(t, m.Validate(), mesh.ErrNormalCount)
}

// TestValidate_OK verifies that a well-formed quad passes validation.
func TestValidate_OK(t *testing.T) {
	assert.NoError(t, quad().Validate())
}

// TestClone_Independence verifies that mutating a clone never leaks into the
// source mesh — the fresh-buffers guarantee concurrent fittings rely on.
func TestClone_Independence(t *testing.T) {
	src := quad()
	src.RecomputeNormals()

	clone := src.Clone()
	require.Equal(t, src.Positions, clone.Positions)
	require.Equal(t, src.Normals, clone.Normals)
	require.Equal(t, src.Triangles, clone.Triangles)

	clone.Positions[0][1] = 42
	clone.Normals[0][0] = 42
	clone.Triangles[0][0] = 3

	assert.Equal(t, 0.0, src.Positions[0][1], "clone position mutation must not leak")
	assert.Equal(t, 0.0, src.Normals[0][0], "clone normal mutation must not leak")
	assert.Equal(t, 0, src.Triangles[0][0], "clone triangle mutation must not leak")
}

// TestRecomputeNormals_FlatQuad verifies that every vertex of a flat quad
// receives the unit face normal after recomputation.
func TestRecomputeNormals_FlatQuad(t *testing.T) {
	m := quad()
	m.RecomputeNormals()

	require.Len(t, m.Normals, 4)
	for i, n := range m.Normals {
		assert.InDelta(t, 0.0, n[0], 1e-12, "vertex %d normal x", i)
		assert.InDelta(t, -1.0, n[1], 1e-12, "vertex %d normal y", i)
		assert.InDelta(t, 0.0, n[2], 1e-12, "vertex %d normal z", i)
	}
}

// TestRecomputeNormals_UnreferencedVertex verifies that a vertex no triangle
// touches keeps a zero normal rather than producing NaN.
func TestRecomputeNormals_UnreferencedVertex(t *testing.T) {
	m := quad()
	m.Positions = append(m.Positions, vec3.T{5, 5, 5}) // dangling vertex
	m.RecomputeNormals()

	require.Len(t, m.Normals, 5)
	assert.Equal(t, vec3.Zero, m.Normals[4], "unreferenced vertex keeps zero normal")
}

// TestRecomputeNormals_UnitLength verifies normals come out unit length on a
// non-flat configuration (two quads meeting at a right angle).
func TestRecomputeNormals_UnitLength(t *testing.T) {
	m := mesh.New(
		[]vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}, {0, 1, 0}, {1, 1, 0}},
		nil,
		[]mesh.Tri{{0, 1, 2}, {0, 2, 3}, {0, 4, 1}, {1, 4, 5}},
	)
	m.RecomputeNormals()

	for i, n := range m.Normals {
		assert.InDelta(t, 1.0, n.Length(), 1e-12, "vertex %d normal must be unit length", i)
	}
}
