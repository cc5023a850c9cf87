// Package xi defines numeric policy constants and sentinel errors for the
// stability kernel.
package xi

import "errors"

// Sentinel errors for kernel evaluation.
var (
	// ErrNonPositiveExponent indicates an Lp exponent n ≤ 0.
	ErrNonPositiveExponent = errors.New("xi: exponent must be positive")
	// ErrNonPositiveRadius indicates a reference radius R ≤ 0.
	ErrNonPositiveRadius = errors.New("xi: radius must be positive")
)

const (
	// Epsilon is the floor applied to every denominator before division.
	Epsilon = 1e-12

	// ChebyshevExponent is the exponent beyond which Xi switches from the
	// finite Lp formula to the max-norm (Chebyshev) limit. Raising small
	// magnitudes to powers past this point underflows to zero and large
	// ones overflow to +Inf, so the switch is mandatory for totality.
	ChebyshevExponent = 128.0

	// DefaultTolerance is the |Ξ−1| band used by OnSurface when the caller
	// passes a non-positive tolerance.
	DefaultTolerance = 0.02

	// warpExponent is the fixed Lp exponent of DirWeight. It only shapes
	// the encoder gain, so it is not caller-tunable.
	warpExponent = 4.0
)
