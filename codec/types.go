// Package codec types: wire constants and sentinel errors.
package codec

import "errors"

// Sentinel errors for snapshot (de)serialization.
var (
	// ErrNilSnapshot indicates an encode call with nothing to encode.
	ErrNilSnapshot = errors.New("codec: snapshot must be non-nil")
	// ErrBadMagic indicates input that is not an orbfield snapshot.
	ErrBadMagic = errors.New("codec: bad magic")
	// ErrBadVersion indicates a snapshot from an unknown format revision.
	ErrBadVersion = errors.New("codec: unsupported version")
	// ErrBadMode indicates a header mode that is neither field nor
	// coefficients.
	ErrBadMode = errors.New("codec: unknown snapshot mode")
	// ErrTruncated indicates a payload whose length contradicts the header.
	ErrTruncated = errors.New("codec: truncated snapshot")
)

// Wire constants. The byte widths must stay in lockstep with package
// metrics' footprint model.
const (
	// Magic opens every snapshot: "ORBF" in byte order.
	Magic uint32 = 0x4642524F
	// Version is the current format revision.
	Version uint8 = 1

	// ModeField tags a dense grid snapshot.
	ModeField uint8 = 1
	// ModeCoefficients tags a truncated spectrum snapshot.
	ModeCoefficients uint8 = 2

	headerSize = 16
	cellSize   = 8
	coeffSize  = 16
	dcSize     = 8
)
