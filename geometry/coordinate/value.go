package coordinate

import (
	"fmt"
	"math"
	"strconv"
)

// MaxDigits is the number of fraction digits needed to write any float64
// exactly (the smallest subnormal is 2^-1074). Rounding to this many digits or
// more leaves a value unchanged.
const MaxDigits = 1074

// Value is a coordinate in its canonical output form: a whole number when the
// source coordinate was integral, otherwise the coordinate rounded to a fixed
// number of decimal digits.
type Value struct {
	Float    float64
	Integral bool
}

// Canonical converts v to its output form.
//
// Rounding goes through strconv's correctly rounded decimal conversion, so
// ties are broken to even on the exact binary value of v: 0.125 rounds to
// 0.12 at two digits and 2.675 (stored as 2.67499...) rounds to 2.67.
// Negative digit counts are treated as zero; counts of MaxDigits or more
// return v as is.
func Canonical(v float64, digits int) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{Float: v}
	}
	if v == math.Trunc(v) {
		return Value{Float: positiveZero(v), Integral: true}
	}
	if digits >= MaxDigits {
		return Value{Float: v}
	}
	if digits < 0 {
		digits = 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		// FormatFloat of a finite value always parses back.
		panic(fmt.Sprintf("coordinate: reparse %v: %v", v, err))
	}
	return Value{Float: positiveZero(r)}
}

// String returns the shortest decimal text of the value, without a decimal
// point when there is no fractional part.
func (v Value) String() string {
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}

// Int64 returns the value as an integer when it is integral and fits.
func (v Value) Int64() (int64, bool) {
	if !v.Integral || v.Float < math.MinInt64 || v.Float >= math.MaxInt64 {
		return 0, false
	}
	return int64(v.Float), true
}

func (v Value) MarshalJSON() ([]byte, error) {
	if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
		return nil, fmt.Errorf("coordinate: %v has no JSON form", v.Float)
	}
	return []byte(v.String()), nil
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
