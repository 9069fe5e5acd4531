package point

import (
	"fmt"
	"math"
)

const deg2rad = 2 * math.Pi / 360

// RotationMode selects what a rotation pivots around.
type RotationMode int

const (
	// RotateAboutOrigin pivots around (0, 0) whatever center is given. This
	// is what Rotate does and what existing board files were produced with.
	RotateAboutOrigin RotationMode = iota

	// RotateAboutCenter translates to the center, rotates and translates
	// back.
	RotateAboutCenter
)

func (m RotationMode) String() string {
	switch m {
	case RotateAboutOrigin:
		return "origin"
	case RotateAboutCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseRotationMode is the inverse of RotationMode.String.
func ParseRotationMode(s string) (RotationMode, error) {
	switch s {
	case "origin", "":
		return RotateAboutOrigin, nil
	case "center":
		return RotateAboutCenter, nil
	default:
		return 0, fmt.Errorf("unknown rotation mode %q", s)
	}
}

// Rotate turns the point in place by degrees, clockwise in a y-up frame.
//
// The matrix is applied to the absolute coordinates: center is accepted but
// does not take part, so the pivot is always the origin. Use RotateAbout or
// RotateWith(RotateAboutCenter, ...) for a rotation around center.
func (p *Point) Rotate(degrees float64, center Point) {
	p.rotate(degrees)
}

// RotateAbout turns the point in place by degrees around center, using the
// same sense as Rotate.
func (p *Point) RotateAbout(degrees float64, center Point) {
	if degrees == 0 {
		return
	}
	p.X -= center.X
	p.Y -= center.Y
	p.rotate(degrees)
	p.X += center.X
	p.Y += center.Y
}

// RotateWith dispatches to Rotate or RotateAbout.
func (p *Point) RotateWith(mode RotationMode, degrees float64, center Point) {
	switch mode {
	case RotateAboutCenter:
		p.RotateAbout(degrees, center)
	default:
		p.Rotate(degrees, center)
	}
}

// rotate applies the rotation matrix about the origin:
//
//	x' =  x·cos θ + y·sin θ
//	y' = -x·sin θ + y·cos θ
func (p *Point) rotate(degrees float64) {
	sin, cos := math.Sincos(degrees * deg2rad)
	x, y := p.X, p.Y
	p.X = x*cos + y*sin
	p.Y = x*-sin + y*cos
}
