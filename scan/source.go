package scan

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/velkarn/orbfield/xi"
)

// Defaults for the Bumpy perturbation source.
const (
	// DefaultBumpOctaves layers of simplex noise summed per direction.
	DefaultBumpOctaves = 3
	// DefaultBumpFrequency of the first octave over unit-vector space.
	DefaultBumpFrequency = 1.7
	// bumpPersistence halves each successive octave's contribution.
	bumpPersistence = 0.5
)

// Constant is the trivial source: the same radius along every direction.
// A shape scanned from it is a Euclidean sphere.
type Constant float64

// Radius implements Source.
func (c Constant) Radius(_, _ float64) float64 {
	return floorRadius(float64(c))
}

// LpSurface is the closed-form primitive: the Ξ=1 surface of the stability
// kernel with reference radius R and Lp exponent. Exponent 2 is a sphere,
// 1 an octahedron, large values approach a cube.
type LpSurface struct {
	R        float64
	Exponent float64
}

// Radius implements Source by evaluating the generative formula
// r(θ,φ) = R / ‖u(θ,φ)‖ₙ. Invalid parameters (R ≤ 0, n ≤ 0) degrade to the
// radius floor rather than failing: a Source has no error channel, and a
// scan of a misconfigured primitive should produce a degenerate shape, not
// a crash.
func (s LpSurface) Radius(theta, phi float64) float64 {
	r, err := xi.SurfaceRadius(Direction{Theta: theta, Phi: phi}.Vec(), s.R, s.Exponent)
	if err != nil {
		return minRadius
	}

	return floorRadius(r)
}

// Bumpy perturbs a base source with seeded, octave-layered simplex noise
// evaluated over the direction's unit vector, producing organic test shapes
// that are still perfectly reproducible. Amplitude is the peak relative
// deviation (0.15 ⇒ ±15% of the base radius).
type Bumpy struct {
	base      Source
	amplitude float64
	frequency float64
	octaves   int
	noise     opensimplex.Noise
}

// NewBumpy wraps base with a deterministic perturbation. Negative amplitudes
// are mirrored; an amplitude of 0 passes the base through unchanged.
//
// Errors:
//   - ErrNilSource if base is nil.
func NewBumpy(base Source, seed int64, amplitude float64) (*Bumpy, error) {
	if base == nil {
		return nil, ErrNilSource
	}
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return &Bumpy{
		base:      base,
		amplitude: math.Abs(amplitude),
		frequency: DefaultBumpFrequency,
		octaves:   DefaultBumpOctaves,
		noise:     opensimplex.NewNormalized(seed),
	}, nil
}

// Radius implements Source: base radius scaled by 1 + amplitude·(2n−1),
// where n ∈ [0,1] is the layered noise value at the direction's unit vector.
func (b *Bumpy) Radius(theta, phi float64) float64 {
	base := b.base.Radius(theta, phi)
	if b.amplitude == 0 {
		return floorRadius(base)
	}
	u := Direction{Theta: theta, Phi: phi}.Vec()

	// Octave accumulation: each layer doubles frequency, halves weight.
	var sum, weight, norm float64
	freq := b.frequency
	weight = 1
	for o := 0; o < b.octaves; o++ {
		sum += weight * b.noise.Eval3(u.X*freq, u.Y*freq, u.Z*freq)
		norm += weight
		weight *= bumpPersistence
		freq *= 2
	}
	n := sum / norm

	return floorRadius(base * (1 + b.amplitude*(2*n-1)))
}

// Collect draws count directions uniformly over the sphere surface from the
// seeded generator and samples src at each, in a stable order. Uniformity
// over area uses θ ~ U[0,2π) and cosφ ~ U[-1,1], so the poles are not
// oversampled.
//
// Errors:
//   - ErrNilSource if src is nil.
//   - ErrNonPositiveCount if count ≤ 0.
//
// Complexity: O(count).
func Collect(src Source, count int, seed int64) ([]Sample, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if count <= 0 {
		return nil, ErrNonPositiveCount
	}
	rng := rngFromSeed(seed)
	samples := make([]Sample, count)
	for i := range samples {
		theta := 2 * math.Pi * rng.Float64()
		if theta >= 2*math.Pi {
			theta = 0
		}
		phi := math.Acos(1 - 2*rng.Float64())
		d := Direction{Theta: theta, Phi: phi}
		samples[i] = Sample{Dir: d, R: floorRadius(src.Radius(d.Theta, d.Phi))}
	}

	return samples, nil
}

// floorRadius clamps a source output into (0, +Inf) excluding non-finite
// values, so every Sample.R is a usable positive number.
func floorRadius(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < minRadius {
		return minRadius
	}

	return r
}
