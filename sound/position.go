// SPDX-License-Identifier: EPL-2.0

package sound

// Position is a point in the listener's space. The listener sits at the
// origin facing -Z with +Y up.
type Position struct {
	X, Y, Z float64
}

func NewPosition(x, y, z float64) *Position {
	return &Position{X: x, Y: y, Z: z}
}

// Copy returns an independent Position with the same coordinates.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// ApplyTo writes the coordinates into the 3D panner of s. A nil sound is
// ignored.
func (p *Position) ApplyTo(s *Sound) {
	if s == nil || s.panner == nil {
		return
	}
	s.panner.SetPosition(p.X, p.Y, p.Z)
}
