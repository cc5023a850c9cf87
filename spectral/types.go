// Package spectral types: options, coefficients and the immutable set.
package spectral

import (
	"errors"
	"math"

	"github.com/velkarn/orbfield/phasefield"
)

// Sentinel errors for spectral compression.
var (
	// ErrNilField indicates Compress was given a nil phase field.
	ErrNilField = errors.New("spectral: field must be non-nil")
	// ErrBadK indicates a non-positive coefficient budget.
	ErrBadK = errors.New("spectral: K must be positive")
	// ErrBadCoefficient indicates a non-finite or out-of-grid coefficient
	// during set reassembly.
	ErrBadCoefficient = errors.New("spectral: invalid coefficient")
)

// Algorithm selects the transform implementation. Both produce identical
// coefficient sets up to floating rounding.
type Algorithm int

const (
	// AlgoAuto uses the separable FFT fast path.
	AlgoAuto Algorithm = iota
	// AlgoDirect uses the O(N⁴) literal definition. Reference and test
	// oracle; prefer AlgoAuto beyond prototype resolutions.
	AlgoDirect
)

// Defaults for Options.
const (
	// DefaultK coefficients kept by the greedy truncation.
	DefaultK = 40
	// DefaultMinAmplitude below which a coefficient is noise, not a
	// candidate.
	DefaultMinAmplitude = 1e-12
)

// Options configures Compress.
type Options struct {
	// K is the number of coefficients to keep.
	K int
	// Algorithm picks the transform implementation.
	Algorithm Algorithm
	// Workers fans the transform out over this many goroutines when > 1.
	// Any value ≤ 1 means single-threaded.
	Workers int
	// MinAmplitude is the negligibility threshold; ≤ 0 selects the default.
	MinAmplitude float64
}

// DefaultOptions returns the reference configuration: top-40 coefficients,
// FFT fast path, single-threaded.
func DefaultOptions() Options {
	return Options{
		K:            DefaultK,
		Algorithm:    AlgoAuto,
		Workers:      1,
		MinAmplitude: DefaultMinAmplitude,
	}
}

// Coefficient is one kept frequency term. U indexes the θ axis (period N),
// V the mirror-extended φ axis (period 2N). Amplitude is the complex
// magnitude √(Re²+Im²).
type Coefficient struct {
	U, V      int
	Re, Im    float64
	Amplitude float64
}

// CoefficientSet is the immutable compression output.
type CoefficientSet struct {
	dc         float64
	coeffs     []Coefficient
	candidates int
	n          int
	enc        phasefield.Encoding
	defaultR   float64
}

// DC returns the subtracted grid mean.
func (s *CoefficientSet) DC() float64 { return s.dc }

// Len returns the number of kept coefficients (≤ K).
func (s *CoefficientSet) Len() int { return len(s.coeffs) }

// Candidates returns how many frequency pairs cleared the negligibility
// threshold before truncation.
func (s *CoefficientSet) Candidates() int { return s.candidates }

// Resolution returns the source grid's N.
func (s *CoefficientSet) Resolution() int { return s.n }

// Encoding returns the strategy the source field was encoded with; spectral
// reconstruction must decode through it.
func (s *CoefficientSet) Encoding() phasefield.Encoding { return s.enc }

// DefaultRadius returns the source field's data-gap fallback magnitude.
func (s *CoefficientSet) DefaultRadius() float64 { return s.defaultR }

// Coefficients returns a copy of the kept terms, sorted descending by
// amplitude.
func (s *CoefficientSet) Coefficients() []Coefficient {
	out := make([]Coefficient, len(s.coeffs))
	copy(out, s.coeffs)

	return out
}

// NewCoefficientSet reassembles a set from parts, as decoded from a
// serialized snapshot. Coefficients must be finite with frequency indices
// inside the N×2N grid.
//
// Errors:
//   - phasefield.ErrBadResolution, phasefield.ErrNilEncoding on geometry.
//   - ErrBadCoefficient on a broken term or non-finite DC.
func NewCoefficientSet(dc float64, coeffs []Coefficient, candidates, n int, enc phasefield.Encoding, defaultRadius float64) (*CoefficientSet, error) {
	if n < phasefield.MinResolution || n > phasefield.MaxResolution {
		return nil, phasefield.ErrBadResolution
	}
	if enc == nil {
		return nil, phasefield.ErrNilEncoding
	}
	if math.IsNaN(dc) || math.IsInf(dc, 0) {
		return nil, ErrBadCoefficient
	}
	if defaultRadius <= 0 {
		defaultRadius = phasefield.DefaultRadius
	}
	own := make([]Coefficient, len(coeffs))
	for k, c := range coeffs {
		if c.U < 0 || c.U >= n || c.V < 0 || c.V >= 2*n {
			return nil, ErrBadCoefficient
		}
		if !finite(c.Re) || !finite(c.Im) || !finite(c.Amplitude) {
			return nil, ErrBadCoefficient
		}
		own[k] = c
	}
	if candidates < len(own) {
		candidates = len(own)
	}

	return &CoefficientSet{
		dc:         dc,
		coeffs:     own,
		candidates: candidates,
		n:          n,
		enc:        enc,
		defaultR:   defaultRadius,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
