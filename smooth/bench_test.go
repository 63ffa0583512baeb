package smooth_test

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/vponomar/fitweave/mesh"
	"github.com/vponomar/fitweave/smooth"
)

// gridMesh returns a flat n×n quad grid (2n² triangles), a garment-scale
// workload for the smoother.
func gridMesh(n int) *mesh.Mesh {
	var positions []vec3.T
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			positions = append(positions, vec3.T{float64(i) / float64(n), 0, float64(j) / float64(n)})
		}
	}

	var triangles []mesh.Tri
	idx := func(i, j int) int { return i*(n+1) + j }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			triangles = append(triangles,
				mesh.Tri{idx(i, j), idx(i, j+1), idx(i+1, j)},
				mesh.Tri{idx(i+1, j), idx(i, j+1), idx(i+1, j+1)},
			)
		}
	}

	return mesh.New(positions, nil, triangles)
}

// BenchmarkLaplacian measures the default two-sweep smoothing on a 64×64
// grid, adjacency build included (it is rebuilt per invocation).
func BenchmarkLaplacian(b *testing.B) {
	src := gridMesh(64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := src.Clone()
		if err := smooth.Laplacian(m); err != nil {
			b.Fatal(err)
		}
	}
}
