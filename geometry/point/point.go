package point

import (
	"fmt"

	"github.com/hnimtadd/boardgeom/config"
	"github.com/hnimtadd/boardgeom/geometry/coordinate"
	"github.com/mitchellh/hashstructure/v2"
)

// Point represents a location or displacement in the plane.
type Point struct {
	X, Y float64

	// Significant-digit snapshot. A literal Point{} has captured == false
	// and uses the default.
	digits   int
	captured bool
}

// New returns the point (x, y) with the currently configured significant
// digits.
func New(x, y float64) Point {
	return NewWithDigits(x, y, config.SignificantDigits())
}

// Default is the origin with the currently configured significant digits.
func Default() Point { return New(0, 0) }

// NewWithDigits returns the point (x, y) with an explicit digit count instead
// of the process-wide one. Negative counts are treated as zero and counts
// past coordinate.MaxDigits as coordinate.MaxDigits.
func NewWithDigits(x, y float64, digits int) Point {
	digits = min(max(digits, 0), coordinate.MaxDigits)
	return Point{X: x, Y: y, digits: digits, captured: true}
}

// Digits returns the significant-digit count captured at construction.
func (p Point) Digits() int {
	if !p.captured {
		return config.DefaultSignificantDigits
	}
	return p.digits
}

// Add returns a new point, the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return New(p.X+other.X, p.Y+other.Y)
}

// Sub returns a new point, the component-wise difference of p and other.
func (p Point) Sub(other Point) Point {
	return New(p.X-other.X, p.Y-other.Y)
}

// Scale multiplies both coordinates by scalar in place.
func (p *Point) Scale(scalar float64) {
	p.X *= scalar
	p.Y *= scalar
}

// Assign overwrites both coordinates in place.
func (p *Point) Assign(x, y float64) {
	p.X = x
	p.Y = y
}

// Equal reports whether both coordinates are exactly equal. The digit
// snapshot is not compared.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// NotEqual is the negation of Equal.
func (p Point) NotEqual(other Point) bool {
	return !p.Equal(other)
}

// Display formats the point as "[x, y]" with a fixed number of fraction
// digits. It is meant for logs and diagnostics only.
func (p Point) Display(decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("[%.*f, %.*f]", decimals, p.X, decimals, p.Y)
}

func (p Point) String() string {
	return p.Display(2)
}

// hashKey is what Hash feeds to hashstructure. Zeros are normalized so that
// Equal points hash equally.
type hashKey struct {
	X, Y float64
}

// Hash returns a structural hash of the coordinates.
func (p Point) Hash() uint64 {
	key := hashKey{X: p.X, Y: p.Y}
	if key.X == 0 {
		key.X = 0
	}
	if key.Y == 0 {
		key.Y = 0
	}
	hashed, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		// hashKey only holds floats, which hashstructure always accepts.
		panic(fmt.Sprintf("point: failed to hash %v: %v", p, err))
	}
	return hashed
}
