// Package reconstruct shared contract, guards and domain normalization.
package reconstruct

import (
	"errors"
	"math"

	"github.com/velkarn/orbfield/scan"
)

// Sentinel errors for reconstructor construction.
var (
	// ErrNilField indicates NewSpatial was given a nil phase field.
	ErrNilField = errors.New("reconstruct: field must be non-nil")
	// ErrNilCoefficients indicates NewSpectral was given a nil set.
	ErrNilCoefficients = errors.New("reconstruct: coefficient set must be non-nil")
)

// Physical radius clamp applied to every decoded value.
const (
	// MinRadius is the smallest radius a reconstruction may report.
	MinRadius = 1e-6
	// MaxRadius is the largest radius a reconstruction may report.
	MaxRadius = 1e6
)

// Reconstructor answers radius queries against a compacted field. Both
// implementations are immutable and safe for concurrent readers.
type Reconstructor interface {
	// Radius evaluates the field along (theta, phi). Total: the result is
	// always finite and positive; out-of-domain angles are wrapped/clamped.
	Radius(theta, phi float64) float64
}

// normalize wraps θ into [0,2π) and clamps φ into [0,π], turning any finite
// query into an in-domain direction. The θ seam is periodic; φ is not.
func normalize(theta, phi float64) scan.Direction {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	if theta >= 2*math.Pi {
		theta = 0
	}
	if math.IsNaN(theta) {
		theta = 0
	}
	switch {
	case math.IsNaN(phi), phi < 0:
		phi = 0
	case phi > math.Pi:
		phi = math.Pi
	}

	return scan.Direction{Theta: theta, Phi: phi}
}

// guard clamps a decoded radius into the physical range and substitutes
// fallback for non-finite results of extreme coefficient sums.
func guard(r, fallback float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fallback
	}
	if r < MinRadius {
		return MinRadius
	}
	if r > MaxRadius {
		return MaxRadius
	}

	return r
}
