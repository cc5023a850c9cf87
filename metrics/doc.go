// Package metrics measures how well a compacted field stands in for the
// scan it was built from: storage footprint on one axis, reconstruction
// fidelity on the other.
//
// What
//
//	Footprint helpers price the three representations in bytes — the raw
//	sample stream, a dense phase-field snapshot, and a truncated
//	coefficient set — under one fixed serialization model (the same model
//	package codec writes). Evaluate replays a sample set through any
//	Reconstructor and reports the error statistics and the compression
//	ratio side by side.
//
// Why
//
//	Grid resolution, coefficient budget and encoding strategy all trade
//	bytes against fidelity. A single Report makes the trade legible:
//	pick the representation whose StabilityScore is acceptable at the
//	smallest CompressedBytes.
//
// Metrics
//
//   - Ratio           — raw bytes / compressed bytes.
//   - MeanAbsError    — mean |reconstructed − observed| over the samples.
//   - MaxAbsError     — the worst single sample.
//   - ErrStdDev       — spread of the absolute errors.
//   - StabilityScore  — clamp(100 − MAE·Scale, 0, 100); 100 is exact.
//
// Non-finite residuals (a reconstructor is total, but the observed radius
// may be garbage) are dropped before the statistics, not propagated.
//
// Errors
//
//   - ErrNilReconstructor — Evaluate needs something to query.
//   - ErrNoSamples        — empty sample set, or nothing finite survived.
//   - ErrNonPositiveBytes — a footprint of zero bytes prices nothing.
package metrics
