// Package scan provides direction-tagged radius samples and deterministic
// sources that generate them.
//
// What:
//
//   - Direction: a unit-sphere point parametrized by azimuth θ ∈ [0,2π)
//     (periodic) and polar angle φ ∈ [0,π] (not periodic).
//   - Sample: an immutable (Direction, R) pair produced by a scan.
//   - Source: anything that answers "what radius does the shape have along
//     this direction?". Built-ins: Constant, LpSurface (the closed-form
//     primitive driven by the xi kernel) and Bumpy (a seeded simplex-noise
//     perturbation of another source).
//   - Collect: draws count directions uniformly over the sphere from a
//     seeded generator and samples the source at each.
//
// Why:
//
//   - Downstream phase-field construction must be reproducible; an unseeded
//     scan cannot be tested. Every source here is a pure function of its
//     parameters and seed — the same seed always yields the same samples.
//
// Determinism policy (shared by all seeds in this package):
//
//   - seed == 0 selects a fixed default seed, never a time-based one.
//
// Errors:
//
//   - ErrNilSource: Collect received a nil Source.
//   - ErrNonPositiveCount: Collect received count ≤ 0.
//   - ErrDirectionRange: a direction outside θ ∈ [0,2π), φ ∈ [0,π].
package scan
