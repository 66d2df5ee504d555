package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Vector3 is a fixed three dimensional vector, used for the cross product
// family.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// AsVector3 converts v, which must be three dimensional.
func AsVector3(v Vector) (Vector3, error) {
	if v.Dimension() != cross3Dimension {
		return Vector3{}, newInvalidArgument("vectors must be three dimensional")
	}
	return Vector3{X: v.coordinates[0], Y: v.coordinates[1], Z: v.coordinates[2]}, nil
}

func (v3 Vector3) Vector() Vector {
	return Vector{coordinates: []float64{v3.X, v3.Y, v3.Z}}
}

func (v3 Vector3) vec() r3.Vec {
	return r3.Vec{X: v3.X, Y: v3.Y, Z: v3.Z}
}

func (v3 Vector3) Dot(v Vector3) float64 {
	return r3.Dot(v3.vec(), v.vec())
}

func (v3 Vector3) Cross(v Vector3) Vector3 {
	c := r3.Cross(v3.vec(), v.vec())
	return Vector3{X: c.X, Y: c.Y, Z: c.Z}
}

func (v3 Vector3) Norm() float64 {
	return r3.Norm(v3.vec())
}

// Cross returns the cross product v × w. Both operands must be three
// dimensional.
func (v Vector) Cross(w Vector) (Vector, error) {
	a, err := AsVector3(v)
	if err != nil {
		return Vector{}, err
	}
	b, err := AsVector3(w)
	if err != nil {
		return Vector{}, err
	}
	return a.Cross(b).Vector(), nil
}

// AreaOfParallelogramSpanned returns |v × w|.
func (v Vector) AreaOfParallelogramSpanned(w Vector) (float64, error) {
	c, err := v.Cross(w)
	if err != nil {
		return 0, err
	}
	return c.Magnitude(), nil
}

func (v Vector) AreaOfTriangleSpanned(w Vector) (float64, error) {
	area, err := v.AreaOfParallelogramSpanned(w)
	if err != nil {
		return 0, err
	}
	return area / 2, nil
}
