package geometry

import (
	"iter"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is an immutable point in N-dimensional Euclidean space. The zero
// value has dimension 0 and is only ever returned alongside an error.
// Binary operations reject it with ErrInvalidArgument; Scale and Negate
// return it unchanged and its Magnitude is 0.
type Vector struct {
	coordinates []float64
}

// New returns a Vector holding a copy of coordinates.
func New(coordinates ...float64) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, newInvalidArgument("coordinates must be nonempty")
	}
	c := make([]float64, len(coordinates))
	copy(c, coordinates)
	return Vector{coordinates: c}, nil
}

// MustNew is like New but panics on error.
func MustNew(coordinates ...float64) Vector {
	v, err := New(coordinates...)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSeq collects seq into a Vector. A nil seq is not iterable.
func FromSeq(seq iter.Seq[float64]) (Vector, error) {
	if seq == nil {
		return Vector{}, newInvalidArgument("coordinates must be an iterable")
	}
	var c []float64
	for x := range seq {
		c = append(c, x)
	}
	if len(c) == 0 {
		return Vector{}, newInvalidArgument("coordinates must be nonempty")
	}
	return Vector{coordinates: c}, nil
}

// FromValues converts values of any numeric type into a Vector.
func FromValues[T Number](values []T) (Vector, error) {
	if len(values) == 0 {
		return Vector{}, newInvalidArgument("coordinates must be nonempty")
	}
	c := make([]float64, len(values))
	for i, x := range values {
		c[i] = float64(x)
	}
	return Vector{coordinates: c}, nil
}

func (v Vector) Dimension() int {
	return len(v.coordinates)
}

// Coordinates returns a copy of the coordinates.
func (v Vector) Coordinates() []float64 {
	c := make([]float64, len(v.coordinates))
	copy(c, v.coordinates)
	return c
}

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector) At(i int) float64 {
	return v.coordinates[i]
}

// Equals reports whether both vectors hold the same coordinates in the
// same order. Vectors of different dimension are never equal.
func (v Vector) Equals(w Vector) bool {
	return floats.Equal(v.coordinates, w.coordinates)
}

// EqualApprox is Equals with each coordinate pair compared within
// tolerance, absolute or relative.
func (v Vector) EqualApprox(w Vector, tolerance float64) bool {
	return floats.EqualApprox(v.coordinates, w.coordinates, tolerance)
}

func (v Vector) String() string {
	var b strings.Builder
	b.WriteString("Vector: (")
	for i, x := range v.coordinates {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteString(")")
	return b.String()
}
