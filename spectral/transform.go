package spectral

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/velkarn/orbfield/phasefield"
)

// mirrorGrid lays the mean-removed field out as M=2N rows of N values:
// rows 0..N-1 are the field's φ rows, rows N..2N-1 their reverse. The
// extension makes the φ axis even-symmetric, so the periodic basis respects
// the pole boundaries instead of wrapping φ=0 onto φ=π.
func mirrorGrid(f *phasefield.Field) ([][]float64, float64) {
	n := f.Resolution()
	m := 2 * n
	mean := f.Mean()
	rows := make([][]float64, m)
	for y := 0; y < m; y++ {
		j := y
		if y >= n {
			j = m - 1 - y
		}
		row := make([]float64, n)
		for x := 0; x < n; x++ {
			row[x] = f.Value(x, j) - mean
		}
		rows[y] = row
	}

	return rows, mean
}

// directCoefficients is the literal transform definition:
//
//	c(u,v) = (1/(N·M)) · Σ_y Σ_x rows[y][x] · e^{−i2π(u·x/N + v·y/M)}
//
// for u ∈ [0,N), v ∈ [0,M). O(N²·M²) = O(N⁴); the reference the FFT path is
// verified against.
func directCoefficients(rows [][]float64, workers int) [][]complex128 {
	n := len(rows[0])
	m := len(rows)
	norm := 1 / float64(n*m)
	out := make([][]complex128, n)

	fanOut(n, workers, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			line := make([]complex128, m)
			for v := 0; v < m; v++ {
				var re, im float64
				for y := 0; y < m; y++ {
					for x := 0; x < n; x++ {
						ph := -2 * math.Pi * (float64(u*x)/float64(n) + float64(v*y)/float64(m))
						s, c := math.Sincos(ph)
						re += rows[y][x] * c
						im += rows[y][x] * s
					}
				}
				line[v] = complex(re*norm, im*norm)
			}
			out[u] = line
		}
	})

	return out
}

// fftCoefficients computes the same matrix with two separable 1D FFT passes:
// length-N FFTs across θ for every row, then length-M FFTs down φ for every
// θ frequency. Each goroutine owns its FFT plan, since plans carry scratch
// state and are not safe for concurrent use.
func fftCoefficients(rows [][]float64, workers int) [][]complex128 {
	n := len(rows[0])
	m := len(rows)
	norm := complex(1/float64(n*m), 0)

	// Pass 1: θ-axis FFT per mirrored row.
	stage := make([][]complex128, m)
	fanOut(m, workers, func(lo, hi int) {
		fft := fourier.NewCmplxFFT(n)
		seq := make([]complex128, n)
		for y := lo; y < hi; y++ {
			for x, v := range rows[y] {
				seq[x] = complex(v, 0)
			}
			stage[y] = fft.Coefficients(nil, seq)
		}
	})

	// Pass 2: φ-axis FFT per θ frequency column.
	out := make([][]complex128, n)
	fanOut(n, workers, func(lo, hi int) {
		fft := fourier.NewCmplxFFT(m)
		col := make([]complex128, m)
		for u := lo; u < hi; u++ {
			for y := 0; y < m; y++ {
				col[y] = stage[y][u]
			}
			line := fft.Coefficients(nil, col)
			for v := range line {
				line[v] *= norm
			}
			out[u] = line
		}
	})

	return out
}

// fanOut splits [0,total) into contiguous chunks across workers goroutines.
// workers ≤ 1 runs inline. Chunks are disjoint, so no synchronization beyond
// the final wait is needed.
func fanOut(total, workers int, fn func(lo, hi int)) {
	if workers <= 1 || total <= 1 {
		fn(0, total)

		return
	}
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
