// Package region classifies and filters body-mesh vertices and triangles
// into the subset covered by a garment: the torso band, minus the neck
// cut-out and sleeve-cutoff exclusions.
//
// 🚀 What is region?
//
//	Given the body mesh in its reference pose, Select computes the
//	axis-aligned bounding box and a normalized height t = (y − minY)/height
//	per vertex. A vertex is kept iff all of:
//	  1. bottomT ≤ t ≤ topT (the torso band, configurable per garment kind)
//	  2. not in the neck cut-out: not (t ≥ neckT and horizontal distance
//	     from the vertical body axis < neckRadius)
//	  3. not removed by the sleeve cutoff: not (t inside the sleeve band,
//	     |x − centerX| > armSpanRatio × bodyWidth, and
//	     y < shoulderY − sleeveLength), where
//	     shoulderY = minY + shoulderT × height.
//
// A triangle survives only when all three of its vertices are kept. Kept
// vertex indices are compacted into a dense 0-based range; the Submesh
// retains the new→old mapping for the duration of the call. The submesh owns
// freshly allocated buffers, so concurrent fittings of different garments
// against the same body share no mutable state.
//
// ✨ Key features:
//   - t-shirt defaults: band [0.50, 0.85], neck t ≥ 0.92 within 0.08 m,
//     sleeve band [0.70, 0.90], arm span ratio 0.15, shoulder line 0.82
//   - functional options and garment-kind presets (t-shirt, long-sleeve, tank)
//   - degenerate-geometry rejection before any division
//
// Errors (sentinel):
//
//	– ErrDegenerate  the body bounding box has (near-)zero height or width.
//	– ErrEmptyRegion no triangle survived the filter.
//	– mesh sentinels (wrapped) for nil/unindexed/out-of-range bodies.
package region
