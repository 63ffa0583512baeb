// Package collide provides nearest-surface-along-ray queries against a body
// mesh and the collision resolver that enforces a minimum garment clearance.
//
// 🚀 What is collide?
//
//	The per-vertex inward raycast against the full body mesh is the single
//	largest scalability risk of the pipeline (naively O(garment vertices ×
//	body triangles)). It is therefore isolated behind one narrow interface:
//
//	  Surface: NearestAlongRay(origin, dir, maxDist) (Hit, bool)
//
//	Two implementations ship here:
//	  • BruteForce — linear triangle scan, the correctness reference
//	  • BVH — median-split bounding-volume hierarchy over the body
//	    triangles, longest-axis split, slab-test traversal
//
//	A raycast returning no intersection is a normal, expected outcome,
//	reported as (Hit{}, false) and never as an error.
//
// ✨ Collision resolution:
//
//	Resolve casts a ray from each garment vertex along its negated normal;
//	when the nearest hit distance d is below the minimum clearance
//	(0.015 m for final resolution), the vertex is pushed outward along its
//	normal by (minClearance − d) × 1.2, an elastic overshoot. Normals are
//	recomputed afterwards.
//
// Ray-triangle intersection uses the Möller–Trumbore test; BVH nodes live in
// a flat arena indexed by integers, so the tree carries no cyclic pointers.
//
// Errors (sentinel):
//
//	– ErrNilSurface  Resolve received a nil Surface.
//	– mesh sentinels (wrapped) for invalid meshes at construction.
package collide
