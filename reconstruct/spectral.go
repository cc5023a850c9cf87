package reconstruct

import (
	"math"

	"github.com/velkarn/orbfield/spectral"
)

// Spectral reconstructs by synthesizing the kept frequency terms at the
// continuous (non-quantized) grid coordinate of the query, then decoding.
// Smoother than Spatial: between cell centers the basis interpolates
// instead of stepping.
type Spectral struct {
	set    *spectral.CoefficientSet
	coeffs []spectral.Coefficient
}

// NewSpectral wraps a coefficient set.
//
// Errors: ErrNilCoefficients if set is nil.
func NewSpectral(set *spectral.CoefficientSet) (*Spectral, error) {
	if set == nil {
		return nil, ErrNilCoefficients
	}

	return &Spectral{set: set, coeffs: set.Coefficients()}, nil
}

// Radius implements Reconstructor.
//
// Synthesis: with continuous grid coordinates x = θ/2π·N − ½ and
// y = φ/π·N − ½ (the half-cell shift puts cell centers exactly on the
// transform's sample points) and M = 2N the mirrored φ period,
//
//	F(θ,φ) = dc + Σ (Re·cos(ph) − Im·sin(ph)),  ph = 2π(U·x/N + V·y/M)
//
// which is the real part of the inverse transform restricted to the kept
// terms. Complexity: O(K) per query.
func (s *Spectral) Radius(theta, phi float64) float64 {
	d := normalize(theta, phi)
	n := float64(s.set.Resolution())
	x := d.Theta/(2*math.Pi)*n - 0.5
	y := d.Phi/math.Pi*n - 0.5

	f := s.set.DC()
	for _, c := range s.coeffs {
		ph := 2 * math.Pi * (float64(c.U)*x/n + float64(c.V)*y/(2*n))
		sin, cos := math.Sincos(ph)
		f += c.Re*cos - c.Im*sin
	}
	r := s.set.Encoding().Decode(d, f)

	return guard(r, s.set.DefaultRadius())
}
