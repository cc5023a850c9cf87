// Package spectral compresses a phase field into its K highest-amplitude
// frequency coefficients.
//
// What:
//
//   - Basis: θ is periodic, so its axis uses the complex exponential basis
//     directly (period N). φ is not periodic; its axis is mirror-extended
//     to length M = 2N (original rows followed by their reverse) before the
//     same basis applies, which respects the pole boundaries the way a
//     DCT-II would.
//   - Compress: subtracts the grid mean (the DC term), computes coefficients
//     for every representable frequency pair, discards amplitudes below
//     MinAmplitude, sorts the rest descending by amplitude (stable, so ties
//     break by computation order: u-major, then v) and keeps the first K.
//     Greedy energy truncation, not optimal rate-distortion.
//   - CoefficientSet: the immutable output — DC term, sorted top-K
//     coefficients, the candidate count, plus the grid geometry and encoding
//     needed to reconstruct.
//
// Algorithms:
//
//   - AlgoDirect is the literal O(N⁴) definition, acceptable at N ≤ 64 and
//     the reference the fast path is tested against.
//   - AlgoAuto (default) runs two separable 1D FFT passes (gonum
//     dsp/fourier), O(N²·logN), with an unchanged external contract.
//
// Concurrency:
//
//	The transform is embarrassingly parallel across independent frequency
//	rows. Options.Workers > 1 fans the row loop out over that many
//	goroutines writing disjoint slices, then merges with one stable sort.
//	Results are identical for any worker count.
//
// Errors:
//
//   - ErrNilField: Compress received a nil field.
//   - ErrBadK: K ≤ 0.
//   - ErrBadCoefficient: NewCoefficientSet saw a non-finite or out-of-range
//     coefficient.
package spectral
