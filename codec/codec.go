package codec

import (
	"encoding/binary"
	"math"

	"github.com/velkarn/orbfield/phasefield"
	"github.com/velkarn/orbfield/spectral"
)

// putHeader writes the shared 16-byte preamble into buf.
func putHeader(buf []byte, mode, encTag uint8, resolution int, defaultRadius float64) {
	binary.LittleEndian.PutUint32(buf[0:4], Magic)
	buf[4] = Version
	buf[5] = mode
	buf[6] = encTag
	buf[7] = 0
	binary.LittleEndian.PutUint32(buf[8:12], uint32(resolution))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(float32(defaultRadius)))
}

// header is the decoded preamble.
type header struct {
	mode          uint8
	encTag        uint8
	resolution    int
	defaultRadius float64
}

// parseHeader validates magic and version and returns the preamble fields.
func parseHeader(data []byte, wantMode uint8) (header, error) {
	if len(data) < headerSize {
		return header{}, ErrTruncated
	}
	if binary.LittleEndian.Uint32(data[0:4]) != Magic {
		return header{}, ErrBadMagic
	}
	if data[4] != Version {
		return header{}, ErrBadVersion
	}
	if data[5] != wantMode {
		return header{}, ErrBadMode
	}

	return header{
		mode:          data[5],
		encTag:        data[6],
		resolution:    int(binary.LittleEndian.Uint32(data[8:12])),
		defaultRadius: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[12:16]))),
	}, nil
}

// EncodeField serializes a dense grid snapshot: the header, then every cell
// as a float32 value/weight pair in the grid's row-major order.
//
// Errors: ErrNilSnapshot on a nil field.
func EncodeField(f *phasefield.Field) ([]byte, error) {
	if f == nil {
		return nil, ErrNilSnapshot
	}
	n := f.Resolution()
	cells := f.Cells()
	buf := make([]byte, headerSize+len(cells)*cellSize)
	putHeader(buf, ModeField, f.Encoding().Tag(), n, f.DefaultRadius())

	off := headerSize
	for _, c := range cells {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(c.Value)))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(float32(c.Weight)))
		off += cellSize
	}

	return buf, nil
}

// DecodeField restores a dense grid snapshot written by EncodeField.
//
// Errors:
//   - ErrTruncated, ErrBadMagic, ErrBadVersion, ErrBadMode on a broken
//     header or a payload that does not hold exactly resolution² cells.
//   - phasefield.ErrUnknownEncoding on an unknown encoding tag.
//   - phasefield.ErrBadResolution, phasefield.ErrBadCell from reassembly.
func DecodeField(data []byte) (*phasefield.Field, error) {
	h, err := parseHeader(data, ModeField)
	if err != nil {
		return nil, err
	}
	enc, err := phasefield.ByTag(h.encTag)
	if err != nil {
		return nil, err
	}
	if h.resolution < phasefield.MinResolution || h.resolution > phasefield.MaxResolution {
		return nil, phasefield.ErrBadResolution
	}
	payload := data[headerSize:]
	want := h.resolution * h.resolution
	if len(payload) != want*cellSize {
		return nil, ErrTruncated
	}

	cells := make([]phasefield.Cell, want)
	for k := range cells {
		off := k * cellSize
		cells[k] = phasefield.Cell{
			Value:  float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off:]))),
			Weight: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+4:]))),
		}
	}

	return phasefield.FromCells(h.resolution, enc, h.defaultRadius, cells)
}

// EncodeCoefficients serializes a truncated spectrum snapshot: the header,
// the float64 DC term, then each kept coefficient as a 16-byte record. The
// coefficient count is implied by the payload length.
//
// Errors: ErrNilSnapshot on a nil set.
func EncodeCoefficients(s *spectral.CoefficientSet) ([]byte, error) {
	if s == nil {
		return nil, ErrNilSnapshot
	}
	coeffs := s.Coefficients()
	buf := make([]byte, headerSize+dcSize+len(coeffs)*coeffSize)
	putHeader(buf, ModeCoefficients, s.Encoding().Tag(), s.Resolution(), s.DefaultRadius())
	binary.LittleEndian.PutUint64(buf[headerSize:], math.Float64bits(s.DC()))

	off := headerSize + dcSize
	for _, c := range coeffs {
		binary.LittleEndian.PutUint16(buf[off:], uint16(c.U))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(c.V))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(float32(c.Re)))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(float32(c.Im)))
		binary.LittleEndian.PutUint32(buf[off+12:], math.Float32bits(float32(c.Amplitude)))
		off += coeffSize
	}

	return buf, nil
}

// DecodeCoefficients restores a spectrum snapshot written by
// EncodeCoefficients. The restored set reports its kept count as its
// candidate count; the pre-truncation tally is not part of the wire format.
//
// Errors:
//   - ErrTruncated, ErrBadMagic, ErrBadVersion, ErrBadMode on a broken
//     header or a payload that is not a DC term plus whole records.
//   - phasefield.ErrUnknownEncoding on an unknown encoding tag.
//   - spectral.ErrBadCoefficient, phasefield.ErrBadResolution from
//     reassembly.
func DecodeCoefficients(data []byte) (*spectral.CoefficientSet, error) {
	h, err := parseHeader(data, ModeCoefficients)
	if err != nil {
		return nil, err
	}
	enc, err := phasefield.ByTag(h.encTag)
	if err != nil {
		return nil, err
	}
	payload := data[headerSize:]
	if len(payload) < dcSize || (len(payload)-dcSize)%coeffSize != 0 {
		return nil, ErrTruncated
	}
	dc := math.Float64frombits(binary.LittleEndian.Uint64(payload[:dcSize]))

	k := (len(payload) - dcSize) / coeffSize
	coeffs := make([]spectral.Coefficient, k)
	for i := range coeffs {
		off := dcSize + i*coeffSize
		coeffs[i] = spectral.Coefficient{
			U:         int(binary.LittleEndian.Uint16(payload[off:])),
			V:         int(binary.LittleEndian.Uint16(payload[off+2:])),
			Re:        float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+4:]))),
			Im:        float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+8:]))),
			Amplitude: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+12:]))),
		}
	}

	return spectral.NewCoefficientSet(dc, coeffs, k, h.resolution, enc, h.defaultRadius)
}
