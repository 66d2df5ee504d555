package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func (v Vector) Add(w Vector) (Vector, error) {
	if err := checkSameDimension(v, w); err != nil {
		return Vector{}, err
	}
	return Vector{coordinates: floats.AddTo(make([]float64, v.Dimension()), v.coordinates, w.coordinates)}, nil
}

func (v Vector) Subtract(w Vector) (Vector, error) {
	if err := checkSameDimension(v, w); err != nil {
		return Vector{}, err
	}
	return Vector{coordinates: floats.SubTo(make([]float64, v.Dimension()), v.coordinates, w.coordinates)}, nil
}

func (v Vector) Scale(s float64) Vector {
	return Vector{coordinates: floats.ScaleTo(make([]float64, v.Dimension()), s, v.coordinates)}
}

func (v Vector) Negate() Vector {
	return v.Scale(-1)
}

// Magnitude returns the Euclidean (L2) norm of v.
func (v Vector) Magnitude() float64 {
	return floats.Norm(v.coordinates, 2)
}

// Normalized returns the unit vector pointing the same way as v. It fails
// with ErrDomain for the zero vector.
func (v Vector) Normalized() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, newDomainError("cannot normalize the zero vector")
	}
	// Divide rather than scale by 1/m, which overflows for subnormal m.
	c := make([]float64, v.Dimension())
	for i, x := range v.coordinates {
		c[i] = x / m
	}
	return Vector{coordinates: c}, nil
}

func (v Vector) Dot(w Vector) (float64, error) {
	if err := checkSameDimension(v, w); err != nil {
		return 0, err
	}
	return floats.Dot(v.coordinates, w.coordinates), nil
}

// unitCosine returns the dot product of the normalized operands, clamped
// to [-1, 1].
func (v Vector) unitCosine(w Vector) (float64, error) {
	if err := checkSameDimension(v, w); err != nil {
		return 0, err
	}
	u1, err := v.Normalized()
	if err != nil {
		return 0, err
	}
	u2, err := w.Normalized()
	if err != nil {
		return 0, err
	}
	return clampUnit(floats.Dot(u1.coordinates, u2.coordinates)), nil
}

// AngleWith returns the angle between v and w, in radians unless
// inDegrees is set.
func (v Vector) AngleWith(w Vector, inDegrees bool) (float64, error) {
	c, err := v.unitCosine(w)
	if err != nil {
		return 0, err
	}
	angle := math.Acos(c)
	if inDegrees {
		return angle * RadiansToDegrees, nil
	}
	return angle, nil
}

// IsZero reports whether the magnitude of v is below tolerance.
func (v Vector) IsZero(tolerance float64) bool {
	return v.Magnitude() < tolerance
}

// IsParallelTo reports whether v and w point along the same line, in
// either direction. The zero vector is parallel to everything.
//
// tolerance is applied twice: an operand with magnitude below it counts as
// zero, and the angle check is made on the cosine, 1-|cos θ| < tolerance,
// since acos loses precision near 0 and π. As 1-cos θ ≈ θ²/2, the
// effective angular tolerance is about √(2·tolerance) radians; for
// DefaultTolerance that is roughly 1.4e-5 rad.
func (v Vector) IsParallelTo(w Vector, tolerance float64) (bool, error) {
	if err := checkSameDimension(v, w); err != nil {
		return false, err
	}
	if v.IsZero(tolerance) || w.IsZero(tolerance) {
		return true, nil
	}
	c, err := v.unitCosine(w)
	if err != nil {
		return false, err
	}
	return 1-math.Abs(c) < tolerance, nil
}

func (v Vector) IsOrthogonalTo(w Vector, tolerance float64) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	return math.Abs(d) < tolerance, nil
}

// ComponentParallelTo projects v onto basis.
func (v Vector) ComponentParallelTo(basis Vector) (Vector, error) {
	if err := checkSameDimension(v, basis); err != nil {
		return Vector{}, err
	}
	u, err := basis.Normalized()
	if err != nil {
		return Vector{}, err
	}
	return u.Scale(floats.Dot(v.coordinates, u.coordinates)), nil
}

// ComponentOrthogonalTo returns what is left of v once its projection onto
// basis is removed.
func (v Vector) ComponentOrthogonalTo(basis Vector) (Vector, error) {
	p, err := v.ComponentParallelTo(basis)
	if err != nil {
		return Vector{}, err
	}
	return v.Subtract(p)
}
