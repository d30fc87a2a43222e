package smooth

import (
	"github.com/katalvlaran/lvlsmooth/grid"
	"github.com/katalvlaran/lvlsmooth/tensor"
)

// newPrecond2 builds the diagonal preconditioner M ≈ A⁻¹ for the 2D
// system A = I+c·G'DG. Each interior cell scatters the diagonal
// contribution of the four-tap gradient quad onto its four corners,
// exactly mirroring the D22 stencil; the reciprocal of the accumulated
// diagonal is then applied as an elementwise multiply.
// Complexity: O(n1·n2) to build, O(n1·n2) per apply.
func newPrecond2(d tensor.Field2, c float64, s, x [][]float64) op2 {
	n1, n2 := len(x[0]), len(x)
	p := grid.Like2(x)
	grid.Fill2(1.0, p)
	c *= 0.25
	di := make([]float64, 3)
	for i2, m2 := 1, 0; i2 < n2; i2, m2 = i2+1, m2+1 {
		for i1, m1 := 1, 0; i1 < n1; i1, m1 = i1+1, m1+1 {
			csi := c
			if s != nil {
				csi *= s[i2][i1]
			}
			d11, d12, d22 := csi, 0.0, csi
			if d != nil {
				d.Get(i1, i2, di)
				d11 = di[0] * csi
				d12 = di[1] * csi
				d22 = di[2] * csi
			}
			p[i2][i1] += (d11 + d12) + (d12 + d22)
			p[m2][m1] += (d11 + d12) + (d12 + d22)
			p[i2][m1] += (d11 - d12) + (-d12 + d22)
			p[m2][i1] += (d11 - d12) + (-d12 + d22)
		}
	}
	for i2 := 0; i2 < n2; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			p[i2][i1] = 1.0 / p[i2][i1]
		}
	}
	return func(x, y [][]float64) {
		grid.Mul2(p, x, y)
	}
}

// newPrecond3 is newPrecond2 for rank-3 arrays, scattering onto the
// eight corners of each gradient cube.
func newPrecond3(d tensor.Field3, c float64, s, x [][][]float64) op3 {
	n1, n2, n3 := len(x[0][0]), len(x[0]), len(x)
	p := grid.Like3(x)
	grid.Fill3(1.0, p)
	c *= 0.0625
	di := make([]float64, 6)
	for i3, m3 := 1, 0; i3 < n3; i3, m3 = i3+1, m3+1 {
		for i2, m2 := 1, 0; i2 < n2; i2, m2 = i2+1, m2+1 {
			for i1, m1 := 1, 0; i1 < n1; i1, m1 = i1+1, m1+1 {
				csi := c
				if s != nil {
					csi *= s[i3][i2][i1]
				}
				d11, d12, d13 := csi, 0.0, 0.0
				d22, d23, d33 := csi, 0.0, csi
				if d != nil {
					d.Get(i1, i2, i3, di)
					d11 = di[0] * csi
					d12 = di[1] * csi
					d13 = di[2] * csi
					d22 = di[3] * csi
					d23 = di[4] * csi
					d33 = di[5] * csi
				}
				p[i3][i2][i1] += (d11 + d12 + d13) + (d12 + d22 + d23) + (d13 + d23 + d33)
				p[m3][m2][m1] += (d11 + d12 + d13) + (d12 + d22 + d23) + (d13 + d23 + d33)
				p[i3][m2][i1] += (d11 - d12 + d13) + (-d12 + d22 - d23) + (d13 - d23 + d33)
				p[m3][i2][m1] += (d11 - d12 + d13) + (-d12 + d22 - d23) + (d13 - d23 + d33)
				p[m3][i2][i1] += (d11 + d12 - d13) + (d12 + d22 - d23) + (-d13 - d23 + d33)
				p[i3][m2][m1] += (d11 + d12 - d13) + (d12 + d22 - d23) + (-d13 - d23 + d33)
				p[m3][m2][i1] += (d11 - d12 - d13) + (-d12 + d22 + d23) + (-d13 + d23 + d33)
				p[i3][i2][m1] += (d11 - d12 - d13) + (-d12 + d22 + d23) + (-d13 + d23 + d33)
			}
		}
	}
	for i3 := 0; i3 < n3; i3++ {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				p[i3][i2][i1] = 1.0 / p[i3][i2][i1]
			}
		}
	}
	return func(x, y [][][]float64) {
		grid.Mul3(p, x, y)
	}
}
