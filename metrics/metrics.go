package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/velkarn/orbfield/phasefield"
	"github.com/velkarn/orbfield/reconstruct"
	"github.com/velkarn/orbfield/scan"
	"github.com/velkarn/orbfield/spectral"
)

// RawFootprint prices the raw sample stream: 12 bytes per sample.
func RawFootprint(samples []scan.Sample) int {
	return len(samples) * BytesPerRawSample
}

// FieldFootprint prices a dense phase-field snapshot: the fixed header plus
// 8 bytes per grid cell. A nil field prices to zero.
func FieldFootprint(f *phasefield.Field) int {
	if f == nil {
		return 0
	}
	n := f.Resolution()

	return HeaderBytes + n*n*BytesPerCell
}

// CoefficientFootprint prices a truncated coefficient snapshot: the fixed
// header, the float64 DC term, then 16 bytes per kept coefficient. A nil set
// prices to zero.
func CoefficientFootprint(s *spectral.CoefficientSet) int {
	if s == nil {
		return 0
	}

	return HeaderBytes + DCBytes + s.Len()*BytesPerCoefficient
}

// Evaluate replays samples through rec and reports fidelity statistics next
// to the compression ratio implied by compressedBytes. Residuals that come
// out non-finite (a broken observed radius; the reconstructor itself is
// total) are dropped before the statistics.
//
// Errors:
//   - ErrNilReconstructor on a nil reconstructor.
//   - ErrNoSamples when samples is empty or no finite residual survives.
//   - ErrNonPositiveBytes on compressedBytes ≤ 0.
func Evaluate(rec reconstruct.Reconstructor, samples []scan.Sample, compressedBytes int, opts Options) (Report, error) {
	if rec == nil {
		return Report{}, ErrNilReconstructor
	}
	if len(samples) == 0 {
		return Report{}, ErrNoSamples
	}
	if compressedBytes <= 0 {
		return Report{}, ErrNonPositiveBytes
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	residuals := make([]float64, 0, len(samples))
	for _, s := range samples {
		d := math.Abs(rec.Radius(s.Dir.Theta, s.Dir.Phi) - s.R)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		residuals = append(residuals, d)
	}
	if len(residuals) == 0 {
		return Report{}, ErrNoSamples
	}

	mae := stat.Mean(residuals, nil)
	spread := 0.0
	if len(residuals) > 1 {
		spread = stat.StdDev(residuals, nil)
	}
	raw := RawFootprint(samples)

	return Report{
		RawBytes:        raw,
		CompressedBytes: compressedBytes,
		Ratio:           float64(raw) / float64(compressedBytes),
		MeanAbsError:    mae,
		MaxAbsError:     floats.Max(residuals),
		ErrStdDev:       spread,
		StabilityScore:  score(mae, scale),
	}, nil
}

// score maps mean absolute error onto [0,100]; exact reconstruction scores
// the full 100 and anything at or past 100/scale error scores zero.
func score(mae, scale float64) float64 {
	s := 100 - mae*scale
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}

	return s
}
