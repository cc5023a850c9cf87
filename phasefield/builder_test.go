package phasefield_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velkarn/orbfield/phasefield"
	"github.com/velkarn/orbfield/scan"
)

// constantSamples returns count in-domain samples of radius r spread over a
// coarse deterministic direction lattice.
func constantSamples(count int, r float64) []scan.Sample {
	samples := make([]scan.Sample, 0, count)
	for k := 0; k < count; k++ {
		theta := 2 * math.Pi * float64(k%37) / 37
		phi := math.Pi * (float64(k%29) + 0.5) / 29
		samples = append(samples, scan.Sample{Dir: scan.Direction{Theta: theta, Phi: phi}, R: r})
	}

	return samples
}

//----------------------------------------------------------------------------//
// Boundary validation
//----------------------------------------------------------------------------//

// TestBuild_Errors verifies option and sample rejection at the boundary.
func TestBuild_Errors(t *testing.T) {
	good := constantSamples(10, 2)

	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 1
	_, err := phasefield.Build(good, opts)
	require.ErrorIs(t, err, phasefield.ErrBadResolution)

	opts = phasefield.DefaultBuildOptions()
	opts.Resolution = phasefield.MaxResolution + 1
	_, err = phasefield.Build(good, opts)
	require.ErrorIs(t, err, phasefield.ErrBadResolution)

	opts = phasefield.DefaultBuildOptions()
	opts.Encoding = nil
	_, err = phasefield.Build(good, opts)
	require.ErrorIs(t, err, phasefield.ErrNilEncoding)

	bad := []scan.Sample{{Dir: scan.Direction{Theta: -1, Phi: 1}, R: 2}}
	_, err = phasefield.Build(bad, phasefield.DefaultBuildOptions())
	require.ErrorIs(t, err, phasefield.ErrSampleRange)

	bad = []scan.Sample{{Dir: scan.Direction{Theta: 1, Phi: 1}, R: 0}}
	_, err = phasefield.Build(bad, phasefield.DefaultBuildOptions())
	require.ErrorIs(t, err, phasefield.ErrSampleRange)
}

//----------------------------------------------------------------------------//
// Invariants
//----------------------------------------------------------------------------//

// TestBuild_AllCellsFiniteAndWeighted checks the core invariant on a sparse
// scan: every cell ends finite with positive weight, holes included.
func TestBuild_AllCellsFiniteAndWeighted(t *testing.T) {
	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 16
	// 5 samples over 256 cells: almost everything is a hole.
	f, err := phasefield.Build(constantSamples(5, 2), opts)
	require.NoError(t, err)
	for j := 0; j < 16; j++ {
		for i := 0; i < 16; i++ {
			v, w := f.Value(i, j), f.Weight(i, j)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "cell (%d,%d)", i, j)
			require.Greater(t, w, 0.0, "cell (%d,%d)", i, j)
		}
	}
}

// TestBuild_EmptyScanSet: an empty scan is a data gap, not an error — the
// field is built entirely from the default magnitude.
func TestBuild_EmptyScanSet(t *testing.T) {
	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 8
	opts.DefaultRadius = 3
	opts.Encoding = phasefield.Identity{}
	f, err := phasefield.Build(nil, opts)
	require.NoError(t, err)
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			require.InDelta(t, 3.0, f.Value(i, j), 1e-12)
			require.Greater(t, f.Weight(i, j), 0.0)
		}
	}
}

// TestBuild_Idempotent: rebuilding from the same fixed scan set and options
// yields bit-identical cells.
func TestBuild_Idempotent(t *testing.T) {
	src := scan.LpSurface{R: 2, Exponent: 4}
	samples, err := scan.Collect(src, 500, 11)
	require.NoError(t, err)

	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 24
	opts.VirtualPoints = true
	a, err := phasefield.Build(samples, opts)
	require.NoError(t, err)
	b, err := phasefield.Build(samples, opts)
	require.NoError(t, err)
	require.Equal(t, a.Cells(), b.Cells())
}

//----------------------------------------------------------------------------//
// Binning semantics
//----------------------------------------------------------------------------//

// TestLocate_ThetaWrapsPhiClamps documents the quantization rules, in
// particular that φ=π lands in the last row instead of wrapping to row 0:
// the poles are distinct and never adjacent.
func TestLocate_ThetaWrapsPhiClamps(t *testing.T) {
	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 8
	f, err := phasefield.Build(constantSamples(16, 1), opts)
	require.NoError(t, err)

	cases := []struct {
		name       string
		theta, phi float64
		i, j       int
	}{
		{"Origin", 0, 0, 0, 0},
		{"ThetaSeam", 2 * math.Pi, 0, 0, 0},
		{"ThetaPastSeam", 2*math.Pi + 0.01, 0, 0, 0},
		{"ThetaNegative", -0.01, 0, 7, 0},
		{"SouthPole", 0, math.Pi, 0, 7},
		{"PhiOvershoot", 0, math.Pi + 0.5, 0, 7},
		{"PhiUndershoot", 0, -0.5, 0, 0},
		{"MidCell", math.Pi, math.Pi / 2, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i, j := f.Locate(tc.theta, tc.phi)
			require.Equal(t, tc.i, i, "theta index")
			require.Equal(t, tc.j, j, "phi index")
		})
	}
}

// TestBuild_PolesNotAdjacent: samples at the north pole must not leak into
// the south row through hole-filling, and vice versa.
func TestBuild_PolesNotAdjacent(t *testing.T) {
	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 4
	opts.Encoding = phasefield.Identity{}
	opts.DefaultRadius = 1

	// All data sits in the north row (φ≈0) with R=9. The south row (j=3)
	// has no weighted neighbor chain shorter than one pass, so it must fall
	// back to DefaultRadius — never average in the north pole's 9.
	var samples []scan.Sample
	for i := 0; i < 4; i++ {
		samples = append(samples, scan.Sample{
			Dir: scan.Direction{Theta: 2 * math.Pi * (float64(i) + 0.5) / 4, Phi: 0.01},
			R:   9,
		})
	}
	f, err := phasefield.Build(samples, opts)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.InDelta(t, 9.0, f.Value(i, 0), 1e-12, "north row keeps its data")
		require.InDelta(t, 1.0, f.Value(i, 3), 1e-12, "south row falls back to default")
	}
}

//----------------------------------------------------------------------------//
// Aggregation and hole-filling values
//----------------------------------------------------------------------------//

// TestBuild_RunningMean: two samples of different weight-relevant order fold
// into the exact weighted mean.
func TestBuild_RunningMean(t *testing.T) {
	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 4
	opts.Encoding = phasefield.Identity{}
	d := scan.Direction{Theta: 0.1, Phi: 1.0}
	samples := []scan.Sample{{Dir: d, R: 2}, {Dir: d, R: 4}, {Dir: d, R: 6}}
	f, err := phasefield.Build(samples, opts)
	require.NoError(t, err)

	i, j := f.Locate(d.Theta, d.Phi)
	require.InDelta(t, 4.0, f.Value(i, j), 1e-12)
	require.InDelta(t, 3.0, f.Weight(i, j), 1e-12)
}

// TestBuild_HoleTakesNeighborMean: a hole flanked by weighted θ neighbors
// receives their weighted average, not the fallback.
func TestBuild_HoleTakesNeighborMean(t *testing.T) {
	opts := phasefield.DefaultBuildOptions()
	opts.Resolution = 4
	opts.Encoding = phasefield.Identity{}
	opts.DefaultRadius = 100 // loud fallback, must not appear

	// Row j=1 (φ∈[π/4,π/2)): cells i=0 and i=2 sampled, i=1 is the hole.
	phi := math.Pi * 1.5 / 4
	mk := func(i int, r float64) scan.Sample {
		return scan.Sample{
			Dir: scan.Direction{Theta: 2 * math.Pi * (float64(i) + 0.5) / 4, Phi: phi},
			R:   r,
		}
	}
	// Double weight on the 2-valued neighbor via duplication.
	samples := []scan.Sample{mk(0, 2), mk(0, 2), mk(2, 8)}
	f, err := phasefield.Build(samples, opts)
	require.NoError(t, err)

	// Hole at (1,1): neighbors θ=0 (value 2, weight 2) and θ=2 (value 8,
	// weight 1) plus any weighted φ neighbors (none here).
	require.InDelta(t, (2*2+8*1)/3.0, f.Value(1, 1), 1e-12)
	require.Greater(t, f.Weight(1, 1), 0.0)
}

// TestBuild_VirtualPoints: enabling densification adds weight without
// changing encoded values, and stays deterministic.
func TestBuild_VirtualPoints(t *testing.T) {
	samples := constantSamples(200, 2)

	base := phasefield.DefaultBuildOptions()
	base.Resolution = 16
	base.Encoding = phasefield.Identity{}
	plain, err := phasefield.Build(samples, base)
	require.NoError(t, err)

	dense := base
	dense.VirtualPoints = true
	warped, err := phasefield.Build(samples, dense)
	require.NoError(t, err)

	var plainW, warpedW float64
	for j := 0; j < 16; j++ {
		for i := 0; i < 16; i++ {
			plainW += plain.Weight(i, j)
			warpedW += warped.Weight(i, j)
			// Constant input: virtual points reuse the same encoded value,
			// so every touched cell still reads exactly 2.
			require.InDelta(t, 2.0, warped.Value(i, j), 1e-12)
		}
	}
	require.Greater(t, warpedW, plainW, "virtual points must add aggregate weight")
}
