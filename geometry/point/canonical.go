package point

import (
	"fmt"

	"github.com/hnimtadd/boardgeom/geometry/coordinate"
)

// PX returns X in canonical output form.
func (p Point) PX() coordinate.Value {
	return coordinate.Canonical(p.X, p.Digits())
}

// PY returns Y in canonical output form.
func (p Point) PY() coordinate.Value {
	return coordinate.Canonical(p.Y, p.Digits())
}

func (p Point) PXY() coordinate.Pair[coordinate.Value] {
	return coordinate.NewPair(p.PX(), p.PY())
}

// Round rounds both coordinates in place to the point's significant digits.
// Integral coordinates are left alone.
func (p *Point) Round() {
	p.X = p.PX().Float
	p.Y = p.PY().Float
}

// Translate renders an SVG translate transform from the canonical
// coordinates. With invertY the y value is negated first, for documents whose
// y axis points down.
func (p Point) Translate(invertY bool) string {
	y := p.Y
	if invertY {
		y = -y
	}
	return fmt.Sprintf("translate(%s,%s)", p.PX(), coordinate.Canonical(y, p.Digits()))
}
