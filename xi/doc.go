// Package xi evaluates the Lp/Minkowski stability coefficient Ξ, the
// closed-form kernel shared by the primitive generator and the phase-field
// encoder.
//
// What:
//
//   - Xi(p, R, n) = R / (|x|ⁿ+|y|ⁿ+|z|ⁿ)^(1/n) — the ratio of a reference
//     radius to the generalized Lp norm of a point. Ξ = 1 defines a surface:
//     a Euclidean sphere at n=2, an octahedron at n=1, and a cube in the
//     n→∞ (Chebyshev) limit.
//   - OnSurface reports whether a point lies within tolerance of that surface.
//   - DirWeight evaluates the same formula on a unit vector with a fixed
//     exponent; it is the direction-dependent gain of the weighted-log
//     phase-field encoding.
//   - SurfaceRadius gives the exact radius of the Ξ=1 surface along a
//     direction, the generative formula for closed-form primitives.
//
// Why:
//
//   - One kernel drives both pipelines: primitives are sampled from it and
//     the encoder warps with it, so their notions of "surface" agree.
//
// Numerics:
//
//   - Exponents above ChebyshevExponent switch to the max-norm limit so the
//     per-component powers cannot overflow. Required, not an optimization.
//   - Denominators are floored at Epsilon before any division.
//   - n ≤ 0 and R ≤ 0 are invalid input, rejected with sentinel errors.
//
// Complexity: every function is O(1).
package xi
