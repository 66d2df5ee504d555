package geometry

import "testing"

var (
	benchVector1 = MustNew(8.462, 7.893, -8.187)
	benchVector2 = MustNew(6.984, -5.975, 4.778)

	benchVectorResult Vector
	benchFloatResult  float64
	benchBoolResult   bool
)

func BenchmarkVectorAdd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVectorResult, _ = benchVector1.Add(benchVector2)
	}
}

func BenchmarkVectorScale(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVectorResult = benchVector1.Scale(2.5)
	}
}

func BenchmarkVectorMagnitude(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult = benchVector1.Magnitude()
	}
}

func BenchmarkVectorDot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult, _ = benchVector1.Dot(benchVector2)
	}
}

func BenchmarkVectorAngleWith(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchFloatResult, _ = benchVector1.AngleWith(benchVector2, false)
	}
}

func BenchmarkVectorIsParallelTo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchBoolResult, _ = benchVector1.IsParallelTo(benchVector2, DefaultTolerance)
	}
}

func BenchmarkVectorCross(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVectorResult, _ = benchVector1.Cross(benchVector2)
	}
}

func BenchmarkVectorComponentOrthogonalTo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchVectorResult, _ = benchVector1.ComponentOrthogonalTo(benchVector2)
	}
}
