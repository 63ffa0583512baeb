// Package fitweave is an in-memory garment-fitting and fabric-draping
// toolkit: it fits a garment shell onto a humanoid body mesh and reports
// how well a given size will fit.
//
// 🚀 What is fitweave?
//
//	A deterministic, synchronous geometry library that brings together:
//		• Mesh primitives: indexed triangle meshes, bounds, normals, CSR adjacency
//		• Region selection: torso-band classification with neck & sleeve cut-outs
//		• Fit analysis: per-region ease metrics and a five-level fit status
//		• Fabric offsets: normal-based inflation with clearance clamping
//		• Draping effects: stretch zones, fabric weight, seam tension, wrinkles
//		• Collision resolution: nearest-surface raycasts with elastic push-out
//		• Laplacian smoothing: simultaneous-update relaxation over the adjacency
//		• Size recommendation: scored candidates with ranked alternatives
//
// ✨ Why choose fitweave?
//
//   - Pure functions – every stage takes its inputs explicitly, no ambient cache
//   - Fresh buffers – each fitting invocation owns a private submesh copy
//   - Numerically guarded – degenerate geometry fails fast, never NaN output
//   - Pluggable raycasts – swap the spatial index without touching drape logic
//
// Under the hood, everything is organized under eight subpackages:
//
//	mesh/    — Mesh, Tri, Bounds, normal recomputation & adjacency building
//	measure/ — body & garment measurement records, ease computation
//	fitment/ — fit classification, analysis reports, size recommendation
//	region/  — torso-region selection and submesh compaction
//	drape/   — fabric offset calculator and the four displacement passes
//	collide/ — nearest-surface-along-ray queries (brute force & BVH), resolver
//	smooth/  — iterative Laplacian mesh relaxation
//	fitting/ — the end-to-end pipeline composing the stages above
//
// Quick ASCII pipeline:
//
//	body mesh ──► region ──► offset ──► drape ──► collide ──► smooth ──► shell
//	measurements ──► fitment ──────────────┘ (ease parameters & fit report)
//
// Dive into DESIGN.md for grounding notes and the per-package doc.go files
// for algorithm walkthroughs.
//
//	go get github.com/vponomar/fitweave
package fitweave
