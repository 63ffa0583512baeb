// Package smooth removes high-frequency artifacts from a draped garment mesh
// with Laplacian smoothing.
//
// 🚀 What is smooth?
//
//	After inflation, draping passes and collision push-outs, neighboring
//	vertices can end up displaced in conflicting directions. The smoother
//	relaxes each vertex toward the average of its topological neighbors:
//
//	  p' = p + λ × (mean(neighbors) − p)
//
//	over a configurable number of iterations (defaults: 2 iterations,
//	λ = 0.5). Updates within one iteration are simultaneous: every average
//	is computed from the previous iteration's positions, so the result is
//	independent of vertex order. Vertices with no neighbors stay put.
//
// ✨ Behavior guarantees:
//
//	– zero iterations is the identity, the mesh (normals included) is
//	  untouched;
//	– λ = 0 never moves a vertex, λ = 1 snaps it onto the neighbor centroid;
//	– normals are recomputed once, after the final iteration.
//
// Adjacency is rebuilt from the triangle list on every invocation, so the
// smoother is correct even when earlier passes changed the mesh.
//
// Option constructors panic on invalid values (negative iteration counts,
// λ outside [0, 1]); these are programmer errors, not runtime conditions.
package smooth
