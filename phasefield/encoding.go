package phasefield

import (
	"math"

	"github.com/velkarn/orbfield/scan"
	"github.com/velkarn/orbfield/xi"
)

// logEpsilon keeps ln(R+ε) defined for radii arbitrarily close to zero.
const logEpsilon = 1e-9

// Wire tags for the encoding strategies. Stable across versions: they are
// written into serialized snapshots and coefficient sets.
const (
	TagIdentity uint8 = 0
	TagLog      uint8 = 1
	TagWeighted uint8 = 2
)

// Encoding maps a radius to the value stored in the grid and back. The
// reference system grew three near-duplicate encode/decode pipelines; this
// interface is their single configurable replacement.
//
// Implementations must be pure: Encode then Decode at the same direction
// returns the original radius up to floating error.
type Encoding interface {
	// Encode maps radius r measured along d to the stored value F.
	Encode(d scan.Direction, r float64) float64
	// Decode inverts Encode at the same direction.
	Decode(d scan.Direction, f float64) float64
	// Tag is the stable wire identifier of the strategy.
	Tag() uint8
}

// Identity stores the radius unchanged: F = R.
type Identity struct{}

// Encode implements Encoding.
func (Identity) Encode(_ scan.Direction, r float64) float64 { return r }

// Decode implements Encoding.
func (Identity) Decode(_ scan.Direction, f float64) float64 { return f }

// Tag implements Encoding.
func (Identity) Tag() uint8 { return TagIdentity }

// Log stores the radius in the log domain: F = ln(R+ε). Compresses dynamic
// range, which flattens the spectrum of spiky shapes.
type Log struct{}

// Encode implements Encoding.
func (Log) Encode(_ scan.Direction, r float64) float64 { return math.Log(r + logEpsilon) }

// Decode implements Encoding.
func (Log) Decode(_ scan.Direction, f float64) float64 { return math.Exp(f) - logEpsilon }

// Tag implements Encoding.
func (Log) Tag() uint8 { return TagLog }

// WeightedLog stores F = ln(R+ε)·V(d) with V = Gain·Ξ(u(d)) from the kernel
// warp. The direction-dependent gain smooths the encoded signal ahead of
// frequency compression; decoding requires the same V, so spatial and
// spectral reconstruction must share this strategy instance's Gain.
type WeightedLog struct {
	// Gain scales the warp weight. Zero selects DefaultGain.
	Gain float64
}

// DefaultGain of the weighted-log encoding.
const DefaultGain = 1.0

func (w WeightedLog) gain() float64 {
	if w.Gain == 0 {
		return DefaultGain
	}

	return w.Gain
}

func (w WeightedLog) weight(d scan.Direction) float64 {
	v := w.gain() * xi.DirWeight(d.Theta, d.Phi)
	if math.Abs(v) < logEpsilon {
		// A pathological gain could zero the divisor; floor it.
		v = logEpsilon
	}

	return v
}

// Encode implements Encoding.
func (w WeightedLog) Encode(d scan.Direction, r float64) float64 {
	return math.Log(r+logEpsilon) * w.weight(d)
}

// Decode implements Encoding.
func (w WeightedLog) Decode(d scan.Direction, f float64) float64 {
	return math.Exp(f/w.weight(d)) - logEpsilon
}

// Tag implements Encoding.
func (WeightedLog) Tag() uint8 { return TagWeighted }

// ByTag resolves a wire tag to its strategy with default parameters.
// WeightedLog round-trips through its tag only at DefaultGain; snapshots of
// custom gains must keep the strategy instance alongside the bytes.
//
// Errors: ErrUnknownEncoding for unclaimed tags.
func ByTag(tag uint8) (Encoding, error) {
	switch tag {
	case TagIdentity:
		return Identity{}, nil
	case TagLog:
		return Log{}, nil
	case TagWeighted:
		return WeightedLog{}, nil
	default:
		return nil, ErrUnknownEncoding
	}
}
