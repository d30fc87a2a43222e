package diffusion

import "github.com/katalvlaran/lvlsmooth/tensor"

// apply21 accumulates the 2×1 stencil in 2D: backward differences per
// axis, scaled by c and the average of adjacent per-sample gains.
// Isotropic only; the tensor field is ignored. Edge taps clamp to 0.
func apply21(_ tensor.Field2, c float64, s, x, y [][]float64) {
	n1 := len(x[0])
	n2 := len(x)
	for i2 := 0; i2 < n2; i2++ {
		m2 := i2 - 1
		if m2 < 0 {
			m2 = 0
		}
		for i1 := 0; i1 < n1; i1++ {
			m1 := i1 - 1
			if m1 < 0 {
				m1 = 0
			}
			cs1 := c
			cs2 := c
			if s != nil {
				cs1 *= 0.5 * (s[i2][i1] + s[i2][m1])
				cs2 *= 0.5 * (s[i2][i1] + s[m2][i1])
			}
			x1 := x[i2][i1] - x[i2][m1]
			x2 := x[i2][i1] - x[m2][i1]
			y1 := cs1 * x1
			y2 := cs2 * x2
			y[i2][i1] += y1 + y2
			y[i2][m1] -= y1
			y[m2][i1] -= y2
		}
	}
}

// apply21of3 accumulates one outer slice of the 3D 2×1 stencil.
func apply21of3(i3 int, _ tensor.Field3, c float64, s, x, y [][][]float64) {
	n1 := len(x[0][0])
	n2 := len(x[0])
	m3 := i3 - 1
	if m3 < 0 {
		m3 = 0
	}
	for i2 := 0; i2 < n2; i2++ {
		m2 := i2 - 1
		if m2 < 0 {
			m2 = 0
		}
		for i1 := 0; i1 < n1; i1++ {
			m1 := i1 - 1
			if m1 < 0 {
				m1 = 0
			}
			cs1 := c
			cs2 := c
			cs3 := c
			if s != nil {
				cs1 *= 0.5 * (s[i3][i2][i1] + s[i3][i2][m1])
				cs2 *= 0.5 * (s[i3][i2][i1] + s[i3][m2][i1])
				cs3 *= 0.5 * (s[i3][i2][i1] + s[m3][i2][i1])
			}
			x1 := x[i3][i2][i1] - x[i3][i2][m1]
			x2 := x[i3][i2][i1] - x[i3][m2][i1]
			x3 := x[i3][i2][i1] - x[m3][i2][i1]
			y1 := cs1 * x1
			y2 := cs2 * x2
			y3 := cs3 * x3
			y[i3][i2][i1] += y1 + y2 + y3
			y[i3][i2][m1] -= y1
			y[i3][m2][i1] -= y2
			y[m3][i2][i1] -= y3
		}
	}
}
