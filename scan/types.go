// Package scan core types: Direction, Sample and the Source contract.
package scan

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for scan operations.
var (
	// ErrNilSource indicates Collect was given a nil Source.
	ErrNilSource = errors.New("scan: source must be non-nil")
	// ErrNonPositiveCount indicates Collect was given count ≤ 0.
	ErrNonPositiveCount = errors.New("scan: sample count must be positive")
	// ErrDirectionRange indicates θ outside [0,2π) or φ outside [0,π].
	ErrDirectionRange = errors.New("scan: direction out of range")
)

// minRadius is the positive floor applied to source outputs so a degenerate
// source can never emit a non-positive or non-finite radius.
const minRadius = 1e-9

// Direction is a unit-sphere point: azimuth Theta ∈ [0,2π) wraps, polar
// angle Phi ∈ [0,π] does not — φ=0 and φ=π are the two distinct poles.
type Direction struct {
	Theta, Phi float64
}

// Valid reports whether the direction lies within its half-open θ domain and
// closed φ domain and both angles are finite.
func (d Direction) Valid() bool {
	if math.IsNaN(d.Theta) || math.IsNaN(d.Phi) {
		return false
	}

	return d.Theta >= 0 && d.Theta < 2*math.Pi && d.Phi >= 0 && d.Phi <= math.Pi
}

// Vec maps the direction to its unit vector
// (sinφ·cosθ, sinφ·sinθ, cosφ).
func (d Direction) Vec() r3.Vec {
	sp := math.Sin(d.Phi)

	return r3.Vec{
		X: sp * math.Cos(d.Theta),
		Y: sp * math.Sin(d.Theta),
		Z: math.Cos(d.Phi),
	}
}

// FromVec converts any non-zero vector back to a Direction, normalizing it
// first. θ is wrapped into [0,2π); the acos argument is clamped so rounding
// can never produce NaN.
func FromVec(v r3.Vec) Direction {
	if n := r3.Norm(v); n < minRadius {
		// Degenerate input: pick the north pole rather than dividing by ~0.
		return Direction{}
	}
	u := r3.Unit(v)
	theta := math.Atan2(u.Y, u.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	if theta >= 2*math.Pi {
		theta = 0
	}
	cz := math.Max(-1, math.Min(1, u.Z))

	return Direction{Theta: theta, Phi: math.Acos(cz)}
}

// Sample is one direction-tagged radius measurement. Immutable once produced.
type Sample struct {
	Dir Direction
	R   float64
}

// Source yields the shape's radius along a direction. Implementations must
// be deterministic: the same (θ,φ) always returns the same radius.
type Source interface {
	Radius(theta, phi float64) float64
}
