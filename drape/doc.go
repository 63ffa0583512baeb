// Package drape shapes a selected garment submesh: normal-based inflation
// from ease values, then four physically-motivated displacement passes
// (stretch zones, fabric weight, seam tension, procedural wrinkles).
//
// 🚀 What is drape?
//
//	The offset calculator blends per-region ease across torso height bands.
//	With u = (y − bottomY)/(topY − bottomY) (0 at hem, 1 at shoulder):
//	  u > 0.8        → shoulder ease
//	  0.5 < u ≤ 0.8  → linear blend chest → shoulder
//	  u ≤ 0.5        → linear blend waist → chest
//	The blended offset (meters) is clamped into [0.003, 0.05]; a negative
//	offset means the garment stretches to a minimal-clearance fit and is
//	clamped to the minimum rather than penetrating. Offsets above 0.01 m
//	(the loose regime) are additionally shaped by the boxiness multiplier
//	0.6 + 0.4 × radialPosition; tight garments are not boxiness-shaped.
//
// ✨ Draping passes (applied in order, each recomputing normals):
//  1. Stretch — inward raycast; hits closer than 0.02 m pull the vertex
//     toward the body by d × (1 − stretchFactor).
//  2. Weight — vertices drop by weightFactor × (1 − t) × (1 + 0.3 × axisDist),
//     weightFactor per fabric {light 0.008, medium 0.015, heavy 0.025}.
//  3. Seams — shoulder-line vertices scale inward ×0.95 in the horizontal
//     plane; side-seam vertices pull 0.003 m toward the body axis.
//  4. Wrinkles — tangential perturbation
//     sin(40x+30z)·cos(35y)·sin(60x) × 0.004 × wrinkleFactor along the
//     in-surface direction (−nz, 0, nx), with wrinkleFactor graded by the
//     inward raycast distance (1.0 below 0.03 m, 0.5 below 0.06 m, else 0).
//
// All passes are methods on a Draper, built once per fitting around the
// garment, the body bounds, the torso band and the body surface. Passes
// mutate the garment mesh in place; the body mesh is only ever read through
// the collide.Surface raycast interface.
//
// Errors (sentinel):
//
//	– ErrNilSurface   a raycasting pass received a nil Surface.
//	– ErrBadBand      the torso band has zero or inverted extent.
//	– mesh sentinels (wrapped) for invalid garment meshes.
package drape
