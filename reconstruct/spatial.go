package reconstruct

import (
	"github.com/velkarn/orbfield/phasefield"
)

// Spatial reconstructs by nearest-cell lookup: the query direction is
// quantized to its grid cell and the cell's stored value is decoded back to
// a radius. No interpolation — the output is piecewise constant over cells.
type Spatial struct {
	field *phasefield.Field
}

// NewSpatial wraps a phase-field snapshot.
//
// Errors: ErrNilField if field is nil.
func NewSpatial(field *phasefield.Field) (*Spatial, error) {
	if field == nil {
		return nil, ErrNilField
	}

	return &Spatial{field: field}, nil
}

// Radius implements Reconstructor.
// Complexity: O(1) per query.
func (s *Spatial) Radius(theta, phi float64) float64 {
	d := normalize(theta, phi)
	i, j := s.field.Locate(d.Theta, d.Phi)
	r := s.field.Encoding().Decode(d, s.field.Value(i, j))

	return guard(r, s.field.DefaultRadius())
}
