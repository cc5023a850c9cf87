// Package reconstruct evaluates a compacted field at arbitrary directions,
// recovering the shape's radius.
//
// What:
//
//   - Spatial: nearest-cell lookup in a phase field, no interpolation —
//     blocky but exact at cell centers.
//   - Spectral: continuous synthesis from a coefficient set,
//     dc + Σ (Re·cos(phase) − Im·sin(phase)) at the non-quantized grid
//     coordinate of the query — smoother output from far fewer bytes.
//   - Both decode the recovered value through the field's encoding strategy
//     and share the same guards.
//
// Totality:
//
//	Radius never returns an error or a non-finite number. Queries are
//	wrapped (θ) and clamped (φ) into the domain instead of indexing out of
//	bounds; decoded radii are clamped into [MinRadius, MaxRadius]; NaN or
//	Inf from extreme-but-legal coefficient sums (log/exp overflow) is
//	replaced by the snapshot's default radius. Constructors are the only
//	error path.
//
// Errors:
//
//   - ErrNilField: NewSpatial received a nil field.
//   - ErrNilCoefficients: NewSpectral received a nil set.
package reconstruct
