package xi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/velkarn/orbfield/xi"
)

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

// TestXi_InvalidInput verifies that non-positive exponents and radii are
// rejected with their sentinel errors.
func TestXi_InvalidInput(t *testing.T) {
	p := r3.Vec{X: 1}
	cases := []struct {
		name     string
		radius   float64
		exponent float64
		err      error
	}{
		{"ZeroExponent", 1, 0, xi.ErrNonPositiveExponent},
		{"NegativeExponent", 1, -2, xi.ErrNonPositiveExponent},
		{"ZeroRadius", 0, 2, xi.ErrNonPositiveRadius},
		{"NegativeRadius", -1, 2, xi.ErrNonPositiveRadius},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := xi.Xi(p, tc.radius, tc.exponent)
			require.ErrorIs(t, err, tc.err)

			_, err = xi.OnSurface(p, tc.radius, tc.exponent, 0.01)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Reference surfaces
//----------------------------------------------------------------------------//

// TestXi_AxisSelfConsistency checks Ξ((R,0,0), R, n) = 1 for every valid n:
// an axis point at distance R sits on the surface regardless of exponent.
func TestXi_AxisSelfConsistency(t *testing.T) {
	for _, n := range []float64{0.5, 1, 2, 3, 7, 50, 200, 1e6} {
		for _, r := range []float64{0.25, 1, 2, 10} {
			v, err := xi.Xi(r3.Vec{X: r}, r, n)
			require.NoError(t, err)
			require.InDelta(t, 1.0, v, 1e-12, "n=%v R=%v", n, r)
		}
	}
}

// TestXi_EuclideanSphere verifies that n=2 reproduces the Euclidean sphere:
// any point at Euclidean distance R has Ξ = 1.
func TestXi_EuclideanSphere(t *testing.T) {
	const radius = 2.0
	dirs := []r3.Vec{
		{X: 1}, {Y: 1}, {Z: -1},
		{X: 1, Y: 1, Z: 1},
		{X: -0.3, Y: 0.8, Z: 0.52},
	}
	for _, d := range dirs {
		p := r3.Scale(radius, r3.Unit(d))
		on, err := xi.OnSurface(p, radius, 2, 1e-9)
		require.NoError(t, err)
		require.True(t, on, "point %v expected on sphere", p)
	}
}

// TestXi_ManhattanOctahedron verifies that n=1 reproduces the octahedron:
// |x|+|y|+|z| = R defines the surface.
func TestXi_ManhattanOctahedron(t *testing.T) {
	const radius = 3.0
	// Each point already satisfies |x|+|y|+|z| = 3.
	pts := []r3.Vec{
		{X: 3},
		{X: 1, Y: 1, Z: 1},
		{X: -1.5, Y: 0.5, Z: 1},
		{X: 0.25, Y: -2, Z: -0.75},
	}
	for _, p := range pts {
		on, err := xi.OnSurface(p, radius, 1, 1e-9)
		require.NoError(t, err)
		require.True(t, on, "point %v expected on octahedron", p)
	}
}

// TestXi_ChebyshevCube verifies the cube limit: for n ≥ 50 the surface is
// max(|x|,|y|,|z|) = R within the default tolerance, and far beyond the
// switch threshold the max-norm branch keeps Ξ finite and exact.
func TestXi_ChebyshevCube(t *testing.T) {
	const radius = 1.5
	// Cube face and edge points: max-component is exactly R.
	pts := []r3.Vec{
		{X: 1.5, Y: 0.2, Z: -0.7},
		{X: 1.5, Y: 1.5, Z: 0.1},
		{X: -1.5, Y: -1.5, Z: -1.5},
	}
	for _, p := range pts {
		// n=50: finite-exponent branch approximates the cube within tolerance.
		on, err := xi.OnSurface(p, radius, 50, 0.05)
		require.NoError(t, err)
		require.True(t, on, "n=50: point %v expected near cube surface", p)

		// n=1e9: Chebyshev branch, exact and overflow-free.
		v, err := xi.Xi(p, radius, 1e9)
		require.NoError(t, err)
		require.False(t, math.IsInf(v, 0) || math.IsNaN(v))
		require.InDelta(t, 1.0, v, 1e-12, "n=1e9: point %v", p)
	}
}

//----------------------------------------------------------------------------//
// Numeric guards and the warp weight
//----------------------------------------------------------------------------//

// TestXi_OriginGuard checks the near-zero denominator floor: Ξ at the origin
// is huge but finite.
func TestXi_OriginGuard(t *testing.T) {
	v, err := xi.Xi(r3.Vec{}, 1, 2)
	require.NoError(t, err)
	require.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	require.Greater(t, v, 1.0)
}

// TestSurfaceRadius confirms that a point placed at SurfaceRadius along its
// direction lands back on the Ξ=1 surface.
func TestSurfaceRadius(t *testing.T) {
	for _, n := range []float64{1, 2, 4, 50} {
		u := r3.Unit(r3.Vec{X: 0.4, Y: -0.7, Z: 0.59})
		r, err := xi.SurfaceRadius(u, 2.5, n)
		require.NoError(t, err)
		v, err := xi.Xi(r3.Scale(r, u), 2.5, n)
		require.NoError(t, err)
		require.InDelta(t, 1.0, v, 1e-12, "n=%v", n)
	}
}

// TestDirWeight_Band verifies the warp weight stays within its documented
// narrow band around 1 over the whole direction domain, and is finite at the
// poles where sinφ vanishes.
func TestDirWeight_Band(t *testing.T) {
	for ti := 0; ti < 16; ti++ {
		for pi := 0; pi <= 16; pi++ {
			theta := 2 * math.Pi * float64(ti) / 16
			phi := math.Pi * float64(pi) / 16
			w := xi.DirWeight(theta, phi)
			require.False(t, math.IsInf(w, 0) || math.IsNaN(w))
			require.GreaterOrEqual(t, w, 1.0-1e-12)
			require.LessOrEqual(t, w, math.Sqrt2+1e-12)
		}
	}
}
