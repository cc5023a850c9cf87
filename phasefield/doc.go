// Package phasefield bins direction-tagged scan samples into an N×N grid
// over the unit sphere — the phase field — and guarantees every cell holds
// a finite encoded value.
//
// What:
//
//   - Encoding: one strategy interface for the value stored per cell —
//     Identity (F = R), Log (F = ln(R+ε)) and WeightedLog
//     (F = ln(R+ε)·V(direction), V from the xi kernel warp). The weighted
//     variant smooths the signal ahead of frequency compression at the cost
//     of needing the same V at decode time.
//   - Build: bins samples — θ index wraps, φ index clamps, so the poles are
//     never treated as adjacent — aggregates them with an online weighted
//     running mean, optionally injects warped virtual points, then fills
//     holes in a single pass.
//   - Field: the immutable snapshot. Rebuilding from the same samples and
//     options yields identical cells; a changed scan set or resolution means
//     building a new Field, never mutating one.
//
// Hole-filling policy:
//
//	Empty cells take the weighted average of their 4 grid neighbors
//	(θ neighbors wrap, φ neighbors clamp) that received samples; cells with
//	no sampled neighbor fall back to the encoding of DefaultRadius at the
//	cell's center direction. Neighbor values are read from the pre-fill
//	aggregation state, so fills never cascade within the pass. Isolated
//	multi-cell holes therefore converge to the fallback, not to distant
//	data — a documented limitation of the single pass.
//
// Errors:
//
//   - ErrBadResolution: N outside [MinResolution, MaxResolution].
//   - ErrNilEncoding: no encoding strategy supplied.
//   - ErrSampleRange: a sample with an out-of-domain direction or R ≤ 0
//     (rejected at the boundary, never silently clamped).
//   - ErrUnknownEncoding: ByTag saw a tag no strategy claims.
//
// An empty scan set is not an error: it produces a field of fallback cells,
// per the data-gap policy.
//
// Complexity: Build is O(S + N²) time, O(N²) memory for S samples.
package phasefield
