package geometry

import "math"

// Number is any real type a Vector can be built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func checkSameDimension(v, w Vector) error {
	if v.Dimension() == 0 || w.Dimension() == 0 {
		return newInvalidArgument("vector has no coordinates")
	}
	if v.Dimension() != w.Dimension() {
		return newDimensionMismatch(v.Dimension(), w.Dimension())
	}
	return nil
}

// clampUnit keeps an acos argument inside [-1, 1]; rounding in the dot
// product of two unit vectors can land just outside.
func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
