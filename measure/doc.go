// Package measure defines the body and garment measurement records consumed
// by the fitting pipeline, plus ease computation with heuristic fallbacks.
//
// 🚀 What is measure?
//
//	Plain scalar records in centimeters. Body measurements arrive from an
//	external form/validation collaborator; garment measurements come from a
//	size-chart resource. Optional fields use the zero value for "absent" —
//	real anthropometric and garment measurements are strictly positive, so
//	zero is unambiguous.
//
// ✨ Key features:
//   - Body.Validate — range checks mirroring the body-model service limits
//   - ComputeEases — per-region garment−body ease with heuristic estimates:
//     missing waist ease defaults to 0.75 × chest ease, missing shoulder
//     ease to min(0.4 × chest ease, 3 cm)
//
// A missing required measurement (chest, on either side) is an error; missing
// optional fields trigger estimation instead — deliberate degraded-mode
// behavior, not a failure.
//
// Errors (sentinel):
//
//	– ErrMissingChest  a chest measurement is absent on the body or garment.
//	– ErrOutOfRange    a supplied measurement is outside the supported range.
package measure
