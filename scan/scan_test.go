package scan_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/velkarn/orbfield/scan"
)

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

// TestDirection_Valid exercises the half-open θ and closed φ domains.
func TestDirection_Valid(t *testing.T) {
	cases := []struct {
		name string
		dir  scan.Direction
		want bool
	}{
		{"Origin", scan.Direction{}, true},
		{"SouthPole", scan.Direction{Phi: math.Pi}, true},
		{"ThetaHigh", scan.Direction{Theta: 2 * math.Pi}, false},
		{"ThetaNegative", scan.Direction{Theta: -0.1, Phi: 1}, false},
		{"PhiHigh", scan.Direction{Phi: math.Pi + 0.1}, false},
		{"NaN", scan.Direction{Theta: math.NaN()}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.dir.Valid())
		})
	}
}

// TestDirection_VecRoundTrip checks Vec/FromVec inverse each other away from
// the poles, and that FromVec never leaves the valid domain.
func TestDirection_VecRoundTrip(t *testing.T) {
	for ti := 0; ti < 12; ti++ {
		for pi := 1; pi < 12; pi++ {
			d := scan.Direction{
				Theta: 2 * math.Pi * float64(ti) / 12,
				Phi:   math.Pi * float64(pi) / 12,
			}
			back := scan.FromVec(d.Vec())
			require.True(t, back.Valid())
			require.InDelta(t, d.Theta, back.Theta, 1e-9)
			require.InDelta(t, d.Phi, back.Phi, 1e-9)
		}
	}
}

// TestFromVec_Degenerate: the zero vector maps to the north pole instead of
// dividing by zero.
func TestFromVec_Degenerate(t *testing.T) {
	d := scan.FromVec(r3.Vec{})
	require.True(t, d.Valid())
	require.Equal(t, scan.Direction{}, d)
}

//----------------------------------------------------------------------------//
// Sources
//----------------------------------------------------------------------------//

// TestLpSurface_Sphere: exponent 2 yields the constant Euclidean radius in
// every direction.
func TestLpSurface_Sphere(t *testing.T) {
	src := scan.LpSurface{R: 2, Exponent: 2}
	for ti := 0; ti < 8; ti++ {
		for pi := 0; pi <= 8; pi++ {
			theta := 2 * math.Pi * float64(ti) / 8
			phi := math.Pi * float64(pi) / 8
			require.InDelta(t, 2.0, src.Radius(theta, phi), 1e-9)
		}
	}
}

// TestLpSurface_CubeCorner: for a near-Chebyshev exponent the diagonal
// radius approaches R·√3, the cube corner distance.
func TestLpSurface_CubeCorner(t *testing.T) {
	src := scan.LpSurface{R: 1, Exponent: 1e9}
	diag := scan.FromVec(r3.Vec{X: 1, Y: 1, Z: 1})
	require.InDelta(t, math.Sqrt(3), src.Radius(diag.Theta, diag.Phi), 1e-6)
}

// TestLpSurface_InvalidDegrades: misconfigured primitives emit the radius
// floor rather than panicking or returning zero.
func TestLpSurface_InvalidDegrades(t *testing.T) {
	src := scan.LpSurface{R: -1, Exponent: 2}
	r := src.Radius(0, math.Pi/2)
	require.Greater(t, r, 0.0)
	require.Less(t, r, 1e-6)
}

// TestBumpy_Deterministic: identical seeds produce identical perturbations;
// different seeds diverge somewhere.
func TestBumpy_Deterministic(t *testing.T) {
	a, err := scan.NewBumpy(scan.Constant(2), 7, 0.2)
	require.NoError(t, err)
	b, err := scan.NewBumpy(scan.Constant(2), 7, 0.2)
	require.NoError(t, err)
	c, err := scan.NewBumpy(scan.Constant(2), 8, 0.2)
	require.NoError(t, err)

	var diverged bool
	for ti := 0; ti < 16; ti++ {
		theta := 2 * math.Pi * float64(ti) / 16
		ra, rb, rc := a.Radius(theta, 1.1), b.Radius(theta, 1.1), c.Radius(theta, 1.1)
		require.Equal(t, ra, rb)
		require.Greater(t, ra, 0.0)
		if ra != rc {
			diverged = true
		}
	}
	require.True(t, diverged, "different seeds should perturb differently")
}

// TestBumpy_NilBase rejects nil sources.
func TestBumpy_NilBase(t *testing.T) {
	_, err := scan.NewBumpy(nil, 1, 0.2)
	require.ErrorIs(t, err, scan.ErrNilSource)
}

//----------------------------------------------------------------------------//
// Collect
//----------------------------------------------------------------------------//

// TestCollect_Errors verifies boundary rejection of nil sources and bad counts.
func TestCollect_Errors(t *testing.T) {
	_, err := scan.Collect(nil, 10, 1)
	require.ErrorIs(t, err, scan.ErrNilSource)

	_, err = scan.Collect(scan.Constant(1), 0, 1)
	require.ErrorIs(t, err, scan.ErrNonPositiveCount)

	_, err = scan.Collect(scan.Constant(1), -3, 1)
	require.ErrorIs(t, err, scan.ErrNonPositiveCount)
}

// TestCollect_Deterministic: the same seed yields the identical sample set,
// seed 0 maps to the fixed default stream.
func TestCollect_Deterministic(t *testing.T) {
	a, err := scan.Collect(scan.Constant(2), 256, 42)
	require.NoError(t, err)
	b, err := scan.Collect(scan.Constant(2), 256, 42)
	require.NoError(t, err)
	require.Equal(t, a, b)

	zero, err := scan.Collect(scan.Constant(2), 16, 0)
	require.NoError(t, err)
	one, err := scan.Collect(scan.Constant(2), 16, 1)
	require.NoError(t, err)
	require.Equal(t, one, zero, "seed 0 must select the fixed default seed")
}

// TestCollect_DomainAndPositivity: every sample is in-domain with R > 0.
func TestCollect_DomainAndPositivity(t *testing.T) {
	samples, err := scan.Collect(scan.LpSurface{R: 1.5, Exponent: 4}, 1000, 3)
	require.NoError(t, err)
	require.Len(t, samples, 1000)
	for _, s := range samples {
		require.True(t, s.Dir.Valid(), "direction %+v out of domain", s.Dir)
		require.Greater(t, s.R, 0.0)
	}
}
