// Package fitment compares garment and body measurements, producing per-region
// fit metrics, an overall classification, and scored size recommendations.
// It is independent of mesh geometry: pure functions over measurement records.
//
// 🚀 What is fitment?
//
//	For each measured region the analyzer computes
//	  difference = garment − body
//	  percent    = 100 × difference / body
//	and classifies percent with a non-decreasing step function over the
//	boundary set {−5, 2, 10, 20}:
//	  < −5 → too_tight, < 2 → tight, < 10 → perfect, < 20 → loose,
//	  otherwise → too_loose.
//
// The overall status is the worst per-region status, where worseness orders
// extremes first: too_tight = too_loose (worst) > tight = loose > perfect
// (best). Any extreme dominates; otherwise moderate beats perfect. Ties in
// severity resolve to the first region in canonical order (chest, waist,
// shoulder, length), keeping the result deterministic.
//
// ✨ Key features:
//   - Status — closed five-variant enum with score and severity lookup tables
//   - Analyze — per-region metrics, overall status, recommendation string
//   - Recommend — scores candidate sizes and picks the best with up to two
//     ranked alternatives
//
// Scoring: score = 2×s(overall) + s(chest) + s(waist, if present) +
// s(shoulder, if present), with s = {too_tight:−10, tight:3, perfect:10,
// loose:5, too_loose:−5}. Before scoring, Recommend materializes absent
// waist/shoulder values from the chest-ease heuristics onto a detached copy
// of each candidate, so those regions participate instead of being skipped;
// the effective record surfaces via Scored.Garment and the caller's chart is
// never written to.
//
// Determinism: Analyze and Recommend are pure — identical inputs always
// yield identical outputs, no hidden state.
//
// Errors (sentinel):
//
//	– ErrEmptyChart        the size chart has no candidates.
//	– measure.ErrMissingChest (wrapped) when a required chest value is absent.
package fitment
