// Package mesh defines the indexed triangle mesh primitives shared by every
// fitting stage: vertex positions & normals, triangle index lists, axis-aligned
// bounds, area-weighted normal recomputation, and a CSR vertex-adjacency graph.
//
// 🚀 What is mesh?
//
//	The foundation layer of fitweave. A Mesh is an ordered sequence of
//	(position, normal) pairs plus an ordered sequence of triangles, each
//	three vertex indices. Stages never mutate a caller's mesh implicitly:
//	Clone produces fresh buffers, and BuildAdjacency derives a new graph
//	per invocation (nothing is memoized at module level).
//
// ✨ Key features:
//   - Validate — fail-fast invariant checks (indexed, in-range, normal count)
//   - Bounds — axis-aligned bounding box with degeneracy detection
//   - RecomputeNormals — area-weighted accumulation, normalized per vertex
//   - BuildAdjacency — symmetric vertex neighbors in CSR offset/neighbor form
//
// The adjacency graph is index-based (vertex indices, not object references):
// a flat offsets array plus a flat neighbors array, the arena+index pattern.
// Neighbors of vertex i live in neighbors[offsets[i]:offsets[i+1]], sorted
// ascending for determinism.
//
// Errors (sentinel):
//
//	– ErrNilMesh      if a nil *Mesh is passed to any operation.
//	– ErrEmptyMesh    if the mesh has no vertices.
//	– ErrNotIndexed   if the mesh has no triangle index list.
//	– ErrIndexRange   if a triangle references a vertex out of range.
//	– ErrNormalCount  if normals are present but do not pair with positions.
//
// Complexity:
//
//   - Validate:          O(T)
//   - Bounds:            O(V)
//   - RecomputeNormals:  O(V + T)
//   - BuildAdjacency:    O(V + E) with E ≤ 3T after deduplication
package mesh
