// Package metrics types: the byte model, options and the report.
package metrics

import "errors"

// Sentinel errors for evaluation.
var (
	// ErrNilReconstructor indicates Evaluate was given a nil reconstructor.
	ErrNilReconstructor = errors.New("metrics: reconstructor must be non-nil")
	// ErrNoSamples indicates an empty sample set, or one whose residuals
	// were all non-finite.
	ErrNoSamples = errors.New("metrics: at least one finite sample required")
	// ErrNonPositiveBytes indicates a compressed footprint of ≤ 0 bytes.
	ErrNonPositiveBytes = errors.New("metrics: compressed bytes must be positive")
)

// Serialization byte model. The footprint helpers and package codec must
// agree on these; a codec round-trip of any snapshot writes exactly the
// number of bytes the matching footprint helper prices.
const (
	// BytesPerRawSample prices one scan sample: three float32 (θ, φ, r).
	BytesPerRawSample = 12
	// HeaderBytes prices the fixed snapshot header.
	HeaderBytes = 16
	// BytesPerCell prices one dense grid cell: two float32 (value, weight).
	BytesPerCell = 8
	// BytesPerCoefficient prices one kept term: two uint16 frequency
	// indices, three float32 (re, im, amplitude).
	BytesPerCoefficient = 16
	// DCBytes prices the float64 grid mean carried by a coefficient
	// snapshot.
	DCBytes = 8
)

// DefaultScale converts mean absolute error into stability-score points.
const DefaultScale = 100.0

// Options configures Evaluate.
type Options struct {
	// Scale is the MAE→score multiplier; ≤ 0 selects DefaultScale.
	Scale float64
}

// DefaultOptions returns the reference scoring configuration.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale}
}

// Report is the outcome of one Evaluate run.
type Report struct {
	// RawBytes is the footprint of the raw sample stream.
	RawBytes int
	// CompressedBytes is the footprint of the representation under test.
	CompressedBytes int
	// Ratio is RawBytes/CompressedBytes.
	Ratio float64
	// MeanAbsError is the mean |reconstructed − observed| radius.
	MeanAbsError float64
	// MaxAbsError is the largest single-sample error.
	MaxAbsError float64
	// ErrStdDev is the sample standard deviation of the absolute errors;
	// zero when only one sample survives.
	ErrStdDev float64
	// StabilityScore is clamp(100 − MeanAbsError·Scale, 0, 100).
	StabilityScore float64
}
