package collide

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/vponomar/fitweave/mesh"
)

// rayTriangle runs the Möller–Trumbore intersection test.
// dir must be unit length; the returned t is then the hit distance in meters.
// Intersections behind the origin or numerically at it are rejected.
func rayTriangle(origin, dir, p0, p1, p2 *vec3.T) (float64, bool) {
	e1 := vec3.Sub(p1, p0)
	e2 := vec3.Sub(p2, p0)

	pvec := vec3.Cross(dir, &e2)
	det := vec3.Dot(&e1, &pvec)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false // ray parallel to the triangle plane
	}
	invDet := 1 / det

	tvec := vec3.Sub(origin, p0)
	u := vec3.Dot(&tvec, &pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := vec3.Cross(&tvec, &e1)
	v := vec3.Dot(dir, &qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := vec3.Dot(&e2, &qvec) * invDet
	if t < rayEpsilon {
		return 0, false
	}

	return t, true
}

// BruteForce is the reference Surface: a linear Möller–Trumbore scan over
// every body triangle. O(T) per query; use BVH for production meshes.
type BruteForce struct {
	body *mesh.Mesh
}

// NewBruteForce builds the reference surface over a validated body mesh.
// The mesh is read, never mutated; the caller must not modify it while
// queries are running.
func NewBruteForce(body *mesh.Mesh) (*BruteForce, error) {
	if err := body.Validate(); err != nil {
		return nil, fmt.Errorf("collide: %w", err)
	}

	return &BruteForce{body: body}, nil
}

// NearestAlongRay scans all triangles and keeps the closest hit ≤ maxDist.
func (s *BruteForce) NearestAlongRay(origin, dir *vec3.T, maxDist float64) (Hit, bool) {
	best := Hit{Distance: maxDist}
	found := false

	for i, tr := range s.body.Triangles {
		t, ok := rayTriangle(origin, dir,
			&s.body.Positions[tr[0]],
			&s.body.Positions[tr[1]],
			&s.body.Positions[tr[2]])
		if !ok || t > best.Distance {
			continue
		}
		best = Hit{Distance: t, Triangle: i}
		found = true
	}

	if !found {
		return Hit{}, false
	}

	return best, true
}
