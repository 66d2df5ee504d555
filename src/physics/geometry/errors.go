package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed constructor input, or
	// when an operation needs a specific dimension (the cross family).
	ErrInvalidArgument = errors.New("geometry: invalid argument")
	// ErrDimensionMismatch is returned by binary operations between
	// vectors of different dimension.
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")
	// ErrDomain is returned when an operation is mathematically undefined,
	// like normalizing or projecting onto the zero vector.
	ErrDomain = errors.New("geometry: domain error")
)

func newInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func newDimensionMismatch(a, b int) error {
	return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, a, b)
}

func newDomainError(msg string) error {
	return fmt.Errorf("%w: %s", ErrDomain, msg)
}
