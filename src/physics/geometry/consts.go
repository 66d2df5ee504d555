package geometry

import "math"

const (
	// DefaultTolerance is the threshold the predicates are documented
	// against: IsZero, IsParallelTo and IsOrthogonalTo.
	DefaultTolerance = 1e-10

	// RadiansToDegrees converts an angle from radians to degrees.
	RadiansToDegrees = 180 / math.Pi
)

const cross3Dimension = 3
