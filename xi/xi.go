package xi

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Xi — stability coefficient of a point against an Lp reference surface.
//
// Description:
//
//	Ξ(p, R, n) = R / ‖p‖ₙ, where ‖p‖ₙ = (|x|ⁿ + |y|ⁿ + |z|ⁿ)^(1/n).
//	Ξ > 1 means p lies inside the surface of radius R, Ξ < 1 outside,
//	and Ξ = 1 exactly on it.
//
// Limit handling:
//
//	For exponent > ChebyshevExponent the Lp norm is replaced by the
//	max-norm limit ‖p‖∞ = max(|x|,|y|,|z|), which the finite formula
//	converges to but cannot compute without overflow.
//
// Errors:
//   - ErrNonPositiveExponent if exponent ≤ 0.
//   - ErrNonPositiveRadius if radius ≤ 0.
//
// Complexity: O(1).
func Xi(p r3.Vec, radius, exponent float64) (float64, error) {
	if exponent <= 0 {
		return 0, ErrNonPositiveExponent
	}
	if radius <= 0 {
		return 0, ErrNonPositiveRadius
	}

	return radius / lpNorm(p, exponent), nil
}

// OnSurface reports whether p lies within tolerance of the Ξ=1 surface of
// radius R and exponent n, i.e. |Ξ−1| < tolerance. A non-positive tolerance
// selects DefaultTolerance.
//
// Errors: same as Xi.
// Complexity: O(1).
func OnSurface(p r3.Vec, radius, exponent, tolerance float64) (bool, error) {
	v, err := Xi(p, radius, exponent)
	if err != nil {
		return false, err
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return math.Abs(v-1) < tolerance, nil
}

// SurfaceRadius returns the radius of the Ξ=1 surface along the unit
// direction u: the point r·u satisfies Ξ(r·u, R, n) = 1 at r = R/‖u‖ₙ.
// This is the generative formula for closed-form primitives.
//
// Errors: same as Xi.
// Complexity: O(1).
func SurfaceRadius(u r3.Vec, radius, exponent float64) (float64, error) {
	return Xi(u, radius, exponent)
}

// DirWeight evaluates the kernel on the unit vector of (theta, phi) with the
// fixed warp exponent and R=1. It is independent of any reference radius and
// is used only as a direction-dependent encoder gain; for unit vectors the
// result stays within a narrow band around 1, which keeps the weighted-log
// encoding invertible.
//
// Complexity: O(1).
func DirWeight(theta, phi float64) float64 {
	sp := math.Sin(phi)
	u := r3.Vec{
		X: sp * math.Cos(theta),
		Y: sp * math.Sin(theta),
		Z: math.Cos(phi),
	}

	return 1 / lpNorm(u, warpExponent)
}

// lpNorm computes ‖p‖ₙ with the Chebyshev switch and an Epsilon floor so the
// callers above may divide by it unconditionally.
func lpNorm(p r3.Vec, exponent float64) float64 {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	var norm float64
	if exponent > ChebyshevExponent {
		norm = math.Max(ax, math.Max(ay, az))
	} else {
		sum := math.Pow(ax, exponent) + math.Pow(ay, exponent) + math.Pow(az, exponent)
		norm = math.Pow(sum, 1/exponent)
	}
	if norm < Epsilon {
		norm = Epsilon
	}

	return norm
}
