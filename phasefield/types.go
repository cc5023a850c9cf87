// Package phasefield types: cells, build options and the immutable Field.
package phasefield

import (
	"errors"
	"math"

	"github.com/velkarn/orbfield/scan"
)

// Sentinel errors for phase-field construction.
var (
	// ErrBadResolution indicates a grid resolution outside the valid range.
	ErrBadResolution = errors.New("phasefield: resolution out of range")
	// ErrNilEncoding indicates BuildOptions without an encoding strategy.
	ErrNilEncoding = errors.New("phasefield: encoding must be non-nil")
	// ErrSampleRange indicates a sample with an invalid direction or R ≤ 0.
	ErrSampleRange = errors.New("phasefield: sample out of range")
	// ErrUnknownEncoding indicates an encoding tag no strategy claims.
	ErrUnknownEncoding = errors.New("phasefield: unknown encoding tag")
	// ErrBadCell indicates an externally supplied cell violating the
	// finite-and-weighted invariant.
	ErrBadCell = errors.New("phasefield: cell value must be finite and weighted")
)

// Resolution bounds and construction defaults.
const (
	// MinResolution keeps at least two rows per axis so wrap and clamp differ.
	MinResolution = 2
	// MaxResolution bounds the O(N⁴) direct spectral transform downstream.
	MaxResolution = 512

	// DefaultResolution of the direction grid.
	DefaultResolution = 32
	// DefaultRadius is the magnitude encoded into cells no data can reach.
	DefaultRadius = 1.0
	// DefaultSampleWeight of one real scan sample.
	DefaultSampleWeight = 1.0
	// DefaultVirtualWarp is the component exponent of virtual-point warping.
	DefaultVirtualWarp = 0.85
	// DefaultVirtualWeight scales a virtual point relative to its real twin.
	DefaultVirtualWeight = 0.35

	// fallbackWeight is the synthetic weight of a cell filled from the
	// default magnitude, keeping the never-unweighted invariant.
	fallbackWeight = 0.25
)

// Cell is one grid entry: the aggregated encoded value and the total sample
// weight that produced it.
type Cell struct {
	Value  float64
	Weight float64
}

// BuildOptions configures Build.
//
// Virtual points are a densification heuristic: each real sample is mirrored
// to a second grid position found by warping its unit-vector components
// through sign(c)·|c|^VirtualWarp and renormalizing, inserted at the same
// encoded value with SampleWeight·VirtualWeight. Warp exponent and weight
// are tunables with no first-principles derivation; treat them as dials.
type BuildOptions struct {
	// Resolution N of the N×N direction grid (16–64 typical).
	Resolution int
	// Encoding strategy for cell values.
	Encoding Encoding
	// DefaultRadius encoded into cells that no sample or neighbor reaches.
	DefaultRadius float64
	// SampleWeight of each real sample in the running mean.
	SampleWeight float64
	// VirtualPoints enables the densification heuristic.
	VirtualPoints bool
	// VirtualWarp is the component exponent of the direction warp.
	VirtualWarp float64
	// VirtualWeight scales virtual samples relative to real ones.
	VirtualWeight float64
}

// DefaultBuildOptions returns the reference configuration: a 32×32 grid,
// log encoding, unit sample weight, virtual points off.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Resolution:    DefaultResolution,
		Encoding:      Log{},
		DefaultRadius: DefaultRadius,
		SampleWeight:  DefaultSampleWeight,
		VirtualPoints: false,
		VirtualWarp:   DefaultVirtualWarp,
		VirtualWeight: DefaultVirtualWeight,
	}
}

// Field is the immutable phase-field snapshot. Every cell holds a finite
// value and positive weight after construction.
type Field struct {
	n        int
	enc      Encoding
	defaultR float64
	cells    []Cell // row-major: index = j*n + i
}

// Resolution returns N.
func (f *Field) Resolution() int { return f.n }

// Encoding returns the strategy cells were encoded with.
func (f *Field) Encoding() Encoding { return f.enc }

// DefaultRadius returns the fallback magnitude used for data gaps.
func (f *Field) DefaultRadius() float64 { return f.defaultR }

// Cell returns the cell at θ index i, φ index j.
func (f *Field) Cell(i, j int) Cell { return f.cells[j*f.n+i] }

// Value returns the encoded value at (i, j).
func (f *Field) Value(i, j int) float64 { return f.cells[j*f.n+i].Value }

// Weight returns the accumulated weight at (i, j).
func (f *Field) Weight(i, j int) float64 { return f.cells[j*f.n+i].Weight }

// Locate quantizes a direction to grid indices: i wraps around θ, j clamps
// along φ. The poles land in the first and last rows and are never adjacent.
func (f *Field) Locate(theta, phi float64) (i, j int) {
	n := float64(f.n)
	i = int(math.Floor(theta / (2 * math.Pi) * n))
	i = ((i % f.n) + f.n) % f.n
	j = int(math.Floor(phi / math.Pi * n))
	if j < 0 {
		j = 0
	}
	if j >= f.n {
		j = f.n - 1
	}

	return i, j
}

// CellDir returns the center direction of cell (i, j).
func (f *Field) CellDir(i, j int) scan.Direction {
	n := float64(f.n)

	return scan.Direction{
		Theta: (float64(i) + 0.5) / n * 2 * math.Pi,
		Phi:   (float64(j) + 0.5) / n * math.Pi,
	}
}

// Mean returns the arithmetic mean of all cell values — the DC term the
// spectral compressor subtracts before analysis.
func (f *Field) Mean() float64 {
	var sum float64
	for _, c := range f.cells {
		sum += c.Value
	}

	return sum / float64(len(f.cells))
}

// Cells returns a copy of the grid in row-major order (index = j·N + i).
func (f *Field) Cells() []Cell {
	out := make([]Cell, len(f.cells))
	copy(out, f.cells)

	return out
}

// FromCells reassembles a Field from a row-major cell grid, as produced by
// Cells or decoded from a serialized snapshot. The finite-and-weighted
// invariant is enforced on every cell.
//
// Errors:
//   - ErrBadResolution, ErrNilEncoding on bad parameters.
//   - ErrBadCell if len(cells) ≠ N² or any cell is non-finite or unweighted.
func FromCells(n int, enc Encoding, defaultRadius float64, cells []Cell) (*Field, error) {
	if n < MinResolution || n > MaxResolution {
		return nil, ErrBadResolution
	}
	if enc == nil {
		return nil, ErrNilEncoding
	}
	if len(cells) != n*n {
		return nil, ErrBadCell
	}
	if defaultRadius <= 0 {
		defaultRadius = DefaultRadius
	}
	own := make([]Cell, len(cells))
	for k, c := range cells {
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) || c.Weight <= 0 {
			return nil, ErrBadCell
		}
		own[k] = c
	}

	return &Field{n: n, enc: enc, defaultR: defaultRadius, cells: own}, nil
}
