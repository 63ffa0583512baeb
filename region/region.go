package region

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/vponomar/fitweave/mesh"
)

// Submesh is the freshly allocated garment-coverage subset of a body mesh.
// Its buffers are exclusively owned: mutating them never touches the body.
type Submesh struct {
	// Mesh holds the compacted vertices, normals and re-indexed triangles.
	Mesh *mesh.Mesh

	// Source maps new (dense) vertex indices back to body-mesh indices.
	// Retained for the duration of the fitting call only.
	Source []int

	// Bounds is the body bounding box the selection was computed against.
	Bounds mesh.Bounds

	// BandBottomY / BandTopY are the torso band limits in world space,
	// precomputed for the fabric-offset stage.
	BandBottomY float64
	BandTopY    float64

	// ShoulderY is the world height of the shoulder line.
	ShoulderY float64
}

// Select filters the body mesh down to the garment-coverage region and
// compacts it into a dense, freshly allocated submesh.
//
// Steps:
//  1. Validate the body mesh (fail fast on nil/unindexed/out-of-range).
//  2. Compute the bounding box; reject degenerate height/width before any
//     division can produce NaN.
//  3. Classify every vertex with the keep rule (torso band, neck cut-out,
//     sleeve cutoff).
//  4. Keep a triangle only when all three vertices are kept; compact kept
//     vertex indices into a dense 0-based range with a new→old mapping.
//
// The input body mesh is never mutated.
//
// Complexity: O(V + T)
func Select(body *mesh.Mesh, opts ...Option) (*Submesh, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the body mesh.
	if err := body.Validate(); err != nil {
		return nil, fmt.Errorf("region: %w", err)
	}

	// 3) Bounding box and degeneracy guard.
	bounds, err := body.Bounds()
	if err != nil {
		return nil, fmt.Errorf("region: %w", err)
	}
	if bounds.Degenerate() {
		return nil, fmt.Errorf("%w: height=%.3g width=%.3g", ErrDegenerate, bounds.Height(), bounds.Width())
	}

	shoulderY := bounds.MinY() + cfg.ShoulderT*bounds.Height()

	// 4) Per-vertex classification.
	kept := make([]bool, len(body.Positions))
	for i := range body.Positions {
		kept[i] = keep(&body.Positions[i], bounds, cfg, shoulderY)
	}

	// 5) Triangle filter + index compaction. remap[old] == -1 until the
	//    vertex is first referenced by a surviving triangle, so the submesh
	//    carries no orphan vertices.
	remap := make([]int, len(body.Positions))
	for i := range remap {
		remap[i] = -1
	}

	sub := &Submesh{
		Mesh:        &mesh.Mesh{},
		Bounds:      bounds,
		BandBottomY: bounds.MinY() + cfg.BottomT*bounds.Height(),
		BandTopY:    bounds.MinY() + cfg.TopT*bounds.Height(),
		ShoulderY:   shoulderY,
	}

	hasNormals := len(body.Normals) == len(body.Positions)

	for _, t := range body.Triangles {
		if !kept[t[0]] || !kept[t[1]] || !kept[t[2]] {
			continue
		}

		var nt mesh.Tri
		for c, old := range t {
			if remap[old] == -1 {
				remap[old] = len(sub.Mesh.Positions)
				sub.Mesh.Positions = append(sub.Mesh.Positions, body.Positions[old])
				if hasNormals {
					sub.Mesh.Normals = append(sub.Mesh.Normals, body.Normals[old])
				}
				sub.Source = append(sub.Source, old)
			}
			nt[c] = remap[old]
		}
		sub.Mesh.Triangles = append(sub.Mesh.Triangles, nt)
	}

	// 6) An empty region cannot be draped.
	if len(sub.Mesh.Triangles) == 0 {
		return nil, ErrEmptyRegion
	}

	// 7) Bodies without normals still yield a usable submesh: derive them
	//    from the surviving triangles.
	if !hasNormals {
		sub.Mesh.RecomputeNormals()
	}

	return sub, nil
}

// keep implements the vertex classification rule.
func keep(p *vec3.T, bounds mesh.Bounds, cfg Options, shoulderY float64) bool {
	t := bounds.HeightFrac(p[1])

	// Rule 1: inside the torso band.
	if t < cfg.BottomT || t > cfg.TopT {
		return false
	}

	// Rule 2: not in the neck cut-out.
	if t >= cfg.NeckT && bounds.AxisDistance(p) < cfg.NeckRadius {
		return false
	}

	// Rule 3: not removed by the sleeve cutoff. Applies only when a sleeve
	// length is configured.
	if cfg.SleeveLength > 0 &&
		t >= cfg.SleeveBandLo && t <= cfg.SleeveBandHi &&
		math.Abs(p[0]-bounds.CenterX()) > cfg.ArmSpanRatio*bounds.Width() &&
		p[1] < shoulderY-cfg.SleeveLength {
		return false
	}

	return true
}
