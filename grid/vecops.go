package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dot2 returns the dot product x'y of two rank-2 arrays.
// Shapes must already match.
// Complexity: O(n1·n2).
func Dot2(x, y [][]float64) float64 {
	var d float64
	for i2 := range x {
		d += floats.Dot(x[i2], y[i2])
	}
	return d
}

// Dot3 returns the dot product x'y of two rank-3 arrays.
// Partial sums are accumulated per outer slice and reduced serially,
// so the parallel fan-out needs no locks or atomics.
func Dot3(x, y [][][]float64) float64 {
	n3 := len(x)
	d3 := make([]float64, n3)
	Loop(0, n3, 1, func(i3 int) {
		d3[i3] = Dot2(x[i3], y[i3])
	})
	var d float64
	for _, di := range d3 {
		d += di
	}
	return d
}

// Axpy2 computes y += a·x for rank-2 arrays.
func Axpy2(a float64, x, y [][]float64) {
	for i2 := range x {
		floats.AddScaled(y[i2], a, x[i2])
	}
}

// Axpy3 computes y += a·x for rank-3 arrays, parallel over the outer
// dimension.
func Axpy3(a float64, x, y [][][]float64) {
	Loop(0, len(x), 1, func(i3 int) {
		Axpy2(a, x[i3], y[i3])
	})
}

// Xpay2 computes y = x + a·y for rank-2 arrays.
func Xpay2(a float64, x, y [][]float64) {
	for i2 := range x {
		x2, y2 := x[i2], y[i2]
		for i1 := range y2 {
			y2[i1] = x2[i1] + a*y2[i1]
		}
	}
}

// Xpay3 computes y = x + a·y for rank-3 arrays, parallel over the outer
// dimension.
func Xpay3(a float64, x, y [][][]float64) {
	Loop(0, len(x), 1, func(i3 int) {
		Xpay2(a, x[i3], y[i3])
	})
}

// Mul2 computes z = x·y elementwise for rank-2 arrays.
// z may alias x or y.
func Mul2(x, y, z [][]float64) {
	for i2 := range x {
		x2, y2, z2 := x[i2], y[i2], z[i2]
		for i1 := range z2 {
			z2[i1] = x2[i1] * y2[i1]
		}
	}
}

// Mul3 computes z = x·y elementwise for rank-3 arrays, parallel over
// the outer dimension. z may alias x or y.
func Mul3(x, y, z [][][]float64) {
	Loop(0, len(x), 1, func(i3 int) {
		Mul2(x[i3], y[i3], z[i3])
	})
}

// Norm2 returns the Euclidean norm of a rank-2 array.
func Norm2(x [][]float64) float64 {
	return math.Sqrt(Dot2(x, x))
}

// Norm3 returns the Euclidean norm of a rank-3 array.
func Norm3(x [][][]float64) float64 {
	return math.Sqrt(Dot3(x, x))
}
