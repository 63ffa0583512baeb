package collide

import (
	"fmt"

	"github.com/vponomar/fitweave/mesh"
)

// Resolve pushes garment vertices out of the body so that every vertex keeps
// at least the configured clearance along its inward normal.
//
// For each garment vertex:
//  1. Cast a ray from the vertex along its negated normal, capped at the
//     minimum clearance.
//  2. No hit within that range means the vertex already clears the body;
//     leave it alone.
//  3. On a hit at distance d < minClearance, push the vertex outward along
//     its normal by (minClearance − d) × elasticity.
//
// Garment normals are recomputed after all vertices have been corrected.
// The body surface is only queried, never mutated.
func Resolve(garment *mesh.Mesh, surf Surface, opts ...Option) error {
	if surf == nil {
		return ErrNilSurface
	}
	if err := garment.Validate(); err != nil {
		return fmt.Errorf("collide: %w", err)
	}

	if len(garment.Normals) != len(garment.Positions) {
		garment.RecomputeNormals()
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := range garment.Positions {
		// 1) ray straight into the body
		dir := garment.Normals[i].Scaled(-1)
		if dir.LengthSqr() == 0 {
			continue // degenerate normal, nothing to aim along
		}
		dir.Normalize()

		hit, ok := surf.NearestAlongRay(&garment.Positions[i], &dir, cfg.MinClearance)
		if !ok {
			continue // 2) already clear
		}

		// 3) elastic push-out along the outward normal
		push := garment.Normals[i].Scaled((cfg.MinClearance - hit.Distance) * cfg.Elasticity)
		garment.Positions[i].Add(&push)
	}

	garment.RecomputeNormals()

	return nil
}
