// Package fitting composes the full garment-fitting pipeline: fit analysis
// from measurements, garment-region selection on the body mesh, fabric
// draping, collision resolution and smoothing.
//
// 🚀 What is fitting?
//
//	Fit runs the whole chain for one garment/body pair:
//
//	  measurements ──► fitment.Analyze ───────────────► Report
//	       │
//	       └────────► measure.ComputeEases ──┐
//	                                          ▼
//	  body mesh ───► region.Select ───► drape.Offset ► Stretch ► Weight
//	                                          │                     │
//	                                          ▼                     ▼
//	                                  collide.Resolve ◄── Seams ► Wrinkles
//	                                          │
//	                                          ▼
//	                                  smooth.Laplacian ──► garment mesh
//
//	The body mesh is never mutated: region selection compacts the coverage
//	region into freshly allocated buffers, and every later stage works on
//	that submesh. Collision queries go through the collide.Surface
//	interface; when no surface is supplied, Fit builds a BVH over the body.
//
// ✨ Concurrency:
//
//	Concurrent Fit calls may share the body mesh and a prebuilt Surface,
//	both read-only. Everything else is allocated per call.
//
// Ease values cross the package boundary in centimeters (measurement domain)
// and are converted to meters once, at the draping boundary.
package fitting
