package spectral

import (
	"math"
	"sort"

	"github.com/velkarn/orbfield/phasefield"
)

// Compress — phase field to top-K coefficient set
//
// Description:
//
//	Compress turns an N×N phase field into its K highest-amplitude
//	frequency terms over the θ-periodic, φ-mirrored basis.
//
// Algorithm outline:
//  1. Subtract the grid mean; it becomes the DC term of the output.
//  2. Transform the mirrored grid (direct definition or separable FFT per
//     Options.Algorithm) into the full N×2N coefficient matrix.
//  3. Enumerate coefficients u-major then v, discard amplitudes below
//     MinAmplitude, stable-sort descending by amplitude — ties keep
//     enumeration order — and truncate to K.
//
// The truncation is greedy energy selection: it maximizes kept spectrum
// energy for the budget, not reconstruction rate-distortion.
//
// Errors:
//   - ErrNilField if field is nil.
//   - ErrBadK if opts.K ≤ 0.
//
// Complexity: O(N⁴) direct / O(N²·logN) FFT, then O(C·logC) for the sort
// over C surviving candidates. Memory O(N²).
func Compress(field *phasefield.Field, opts Options) (*CoefficientSet, error) {
	if field == nil {
		return nil, ErrNilField
	}
	if opts.K <= 0 {
		return nil, ErrBadK
	}
	if opts.MinAmplitude <= 0 {
		opts.MinAmplitude = DefaultMinAmplitude
	}

	rows, mean := mirrorGrid(field)
	var matrix [][]complex128
	if opts.Algorithm == AlgoDirect {
		matrix = directCoefficients(rows, opts.Workers)
	} else {
		matrix = fftCoefficients(rows, opts.Workers)
	}

	n := field.Resolution()
	candidates := make([]Coefficient, 0, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < 2*n; v++ {
			c := matrix[u][v]
			amp := math.Hypot(real(c), imag(c))
			if amp < opts.MinAmplitude {
				continue
			}
			candidates = append(candidates, Coefficient{
				U:         u,
				V:         v,
				Re:        real(c),
				Im:        imag(c),
				Amplitude: amp,
			})
		}
	}

	// Stable keeps computation order among equal amplitudes, making the
	// truncation deterministic.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Amplitude > candidates[b].Amplitude
	})

	kept := candidates
	if len(kept) > opts.K {
		kept = kept[:opts.K]
	}
	own := make([]Coefficient, len(kept))
	copy(own, kept)

	return &CoefficientSet{
		dc:         mean,
		coeffs:     own,
		candidates: len(candidates),
		n:          n,
		enc:        field.Encoding(),
		defaultR:   field.DefaultRadius(),
	}, nil
}
