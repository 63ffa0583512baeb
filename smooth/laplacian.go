package smooth

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/vponomar/fitweave/mesh"
)

// Laplacian relaxes each vertex toward the average of its neighbors:
//
//	p' = p + λ × (mean(neighbors) − p)
//
// Per iteration:
//  1. Snapshot the current positions.
//  2. Recompute every vertex from the snapshot (simultaneous update).
//  3. Swap the buffers.
//
// Vertices with no neighbors keep their positions. Normals are recomputed
// once after the final iteration; with zero iterations the mesh is returned
// untouched.
//
// Complexity: O(iterations × (V + E)) after the adjacency build.
func Laplacian(m *mesh.Mesh, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Iterations == 0 {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("smooth: %w", err)
		}

		return nil
	}

	adj, err := mesh.BuildAdjacency(m)
	if err != nil {
		return fmt.Errorf("smooth: %w", err)
	}

	prev := make([]vec3.T, len(m.Positions))
	for iter := 0; iter < cfg.Iterations; iter++ {
		// 1) snapshot, so every average reads the previous iteration
		copy(prev, m.Positions)

		// 2) simultaneous relaxation
		for i := range m.Positions {
			nbs := adj.Neighbors(i)
			if len(nbs) == 0 {
				continue
			}

			var sum vec3.T
			for _, nb := range nbs {
				sum.Add(&prev[nb])
			}
			centroid := sum.Scaled(1 / float64(len(nbs)))

			delta := vec3.Sub(&centroid, &prev[i])
			step := delta.Scaled(cfg.Lambda)
			m.Positions[i] = vec3.Add(&prev[i], &step)
		}
	}

	m.RecomputeNormals()

	return nil
}
