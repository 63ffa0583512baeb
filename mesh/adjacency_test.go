package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/vponomar/fitweave/mesh"
)

// strip returns two triangles sharing the edge 1–2: (0,1,2) and (1,3,2).
func strip() *mesh.Mesh {
	return mesh.New(
		[]vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		nil,
		[]mesh.Tri{{0, 1, 2}, {1, 3, 2}},
	)
}

// TestBuildAdjacency_Neighbors verifies neighbor sets of a two-triangle
// strip: the shared edge is deduplicated and groups are sorted ascending.
func TestBuildAdjacency_Neighbors(t *testing.T) {
	adj, err := mesh.BuildAdjacency(strip())
	require.NoError(t, err)

	require.Equal(t, 4, adj.Len())
	assert.Equal(t, []int{1, 2}, adj.Neighbors(0))
	assert.Equal(t, []int{0, 2, 3}, adj.Neighbors(1))
	assert.Equal(t, []int{0, 1, 3}, adj.Neighbors(2))
	assert.Equal(t, []int{1, 2}, adj.Neighbors(3))
}

// TestBuildAdjacency_Symmetric verifies that every edge appears in both
// directions: j ∈ N(i) ⇒ i ∈ N(j).
func TestBuildAdjacency_Symmetric(t *testing.T) {
	adj, err := mesh.BuildAdjacency(strip())
	require.NoError(t, err)

	for i := 0; i < adj.Len(); i++ {
		for _, j := range adj.Neighbors(i) {
			assert.Contains(t, adj.Neighbors(j), i, "edge %d–%d must be symmetric", i, j)
		}
	}
}

// TestBuildAdjacency_Degree verifies Degree agrees with the neighbor groups.
func TestBuildAdjacency_Degree(t *testing.T) {
	adj, err := mesh.BuildAdjacency(strip())
	require.NoError(t, err)

	for i := 0; i < adj.Len(); i++ {
		assert.Equal(t, len(adj.Neighbors(i)), adj.Degree(i), "vertex %d", i)
	}
}

// TestBuildAdjacency_NotIndexed verifies that an unindexed mesh is rejected
// with the wrapped ErrNotIndexed sentinel.
func TestBuildAdjacency_NotIndexed(t *testing.T) {
	m := mesh.New([]vec3.T{{0, 0, 0}}, nil, nil)

	_, err := mesh.BuildAdjacency(m)
	assert.ErrorIs(t, err, mesh.ErrNotIndexed)
}
