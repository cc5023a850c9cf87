package phasefield

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/velkarn/orbfield/scan"
)

// Build — scan samples to phase field
//
// Description:
//
//	Build aggregates an ordered sample collection into an N×N grid over
//	direction space and returns an immutable snapshot whose every cell is
//	finite and weighted.
//
// Algorithm outline:
//  1. Validate options and every sample at the boundary.
//  2. For each sample: encode F once, bin it (θ wraps, φ clamps) and fold it
//     into the cell's online weighted mean
//     mean' = (mean·w + F·sw) / (w + sw).
//  3. If VirtualPoints: warp the sample's unit vector through
//     sign(c)·|c|^p, renormalize, convert back to (θ,φ) and insert the
//     *same* F at VirtualWeight·SampleWeight. F is never recomputed for the
//     warped direction — the point is a smoothing duplicate, not a
//     measurement.
//  4. Hole-fill in a single pass reading only pre-fill state: empty cells
//     average their weighted 4-neighbors; cells with no weighted neighbor
//     take the encoding of DefaultRadius at the cell center.
//
// Determinism: identical samples and options yield an identical Field;
// aggregation order follows the input slice.
//
// Errors:
//   - ErrBadResolution, ErrNilEncoding on invalid options.
//   - ErrSampleRange on the first out-of-domain or non-positive sample.
//
// Complexity: O(S + N²) time, O(N²) memory.
func Build(samples []scan.Sample, opts BuildOptions) (*Field, error) {
	if opts.Resolution < MinResolution || opts.Resolution > MaxResolution {
		return nil, ErrBadResolution
	}
	if opts.Encoding == nil {
		return nil, ErrNilEncoding
	}
	if opts.DefaultRadius <= 0 {
		opts.DefaultRadius = DefaultRadius
	}
	if opts.SampleWeight <= 0 {
		opts.SampleWeight = DefaultSampleWeight
	}
	if opts.VirtualWarp <= 0 {
		opts.VirtualWarp = DefaultVirtualWarp
	}
	if opts.VirtualWeight <= 0 {
		opts.VirtualWeight = DefaultVirtualWeight
	}
	for _, s := range samples {
		if !s.Dir.Valid() || s.R <= 0 || math.IsInf(s.R, 0) || math.IsNaN(s.R) {
			return nil, ErrSampleRange
		}
	}

	n := opts.Resolution
	f := &Field{
		n:        n,
		enc:      opts.Encoding,
		defaultR: opts.DefaultRadius,
		cells:    make([]Cell, n*n),
	}

	// Aggregation pass.
	for _, s := range samples {
		enc := opts.Encoding.Encode(s.Dir, s.R)
		f.accumulate(s.Dir, enc, opts.SampleWeight)
		if opts.VirtualPoints {
			vd := warpDirection(s.Dir, opts.VirtualWarp)
			f.accumulate(vd, enc, opts.SampleWeight*opts.VirtualWeight)
		}
	}

	f.fillHoles()

	return f, nil
}

// accumulate folds one encoded value into the online weighted running mean
// of the cell owning d.
func (f *Field) accumulate(d scan.Direction, value, weight float64) {
	i, j := f.Locate(d.Theta, d.Phi)
	c := &f.cells[j*f.n+i]
	total := c.Weight + weight
	c.Value = (c.Value*c.Weight + value*weight) / total
	c.Weight = total
}

// warpDirection maps each unit-vector component through sign(c)·|c|^p and
// renormalizes, nudging the direction toward (p < 1) or away from (p > 1)
// the axes.
func warpDirection(d scan.Direction, p float64) scan.Direction {
	u := d.Vec()
	w := r3.Vec{
		X: math.Copysign(math.Pow(math.Abs(u.X), p), u.X),
		Y: math.Copysign(math.Pow(math.Abs(u.Y), p), u.Y),
		Z: math.Copysign(math.Pow(math.Abs(u.Z), p), u.Z),
	}

	return scan.FromVec(w)
}

// fillHoles resolves every zero-weight cell in a single pass over the
// aggregation state. Neighbor reads use the pre-fill snapshot so fills do
// not cascade; θ neighbors wrap, φ neighbors clamp (and a clamped neighbor
// collapsing onto the cell itself is skipped, keeping the poles separate).
func (f *Field) fillHoles() {
	pre := make([]Cell, len(f.cells))
	copy(pre, f.cells)

	for j := 0; j < f.n; j++ {
		for i := 0; i < f.n; i++ {
			if pre[j*f.n+i].Weight > 0 {
				continue
			}

			var sum, wsum float64
			var count int
			// θ neighbors wrap around the seam.
			for _, di := range [2]int{-1, 1} {
				ni := (i + di + f.n) % f.n
				if c := pre[j*f.n+ni]; c.Weight > 0 {
					sum += c.Value * c.Weight
					wsum += c.Weight
					count++
				}
			}
			// φ neighbors clamp: the rows beyond the poles do not exist.
			for _, dj := range [2]int{-1, 1} {
				nj := j + dj
				if nj < 0 || nj >= f.n {
					continue
				}
				if c := pre[nj*f.n+i]; c.Weight > 0 {
					sum += c.Value * c.Weight
					wsum += c.Weight
					count++
				}
			}

			cell := &f.cells[j*f.n+i]
			if count > 0 {
				cell.Value = sum / wsum
				cell.Weight = wsum / 4
			} else {
				cell.Value = f.enc.Encode(f.CellDir(i, j), f.defaultR)
				cell.Weight = fallbackWeight
			}
		}
	}
}
