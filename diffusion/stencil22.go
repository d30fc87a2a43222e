package diffusion

import "github.com/katalvlaran/lvlsmooth/tensor"

// apply22 accumulates the 2×2 stencil in 2D. Four diagonal differences
// are combined into gradient components, multiplied by the tensor, and
// scattered back with the same pattern; the 1/4 factor absorbs the
// half-sample difference spacing squared.
func apply22(d tensor.Field2, c float64, s, x, y [][]float64) {
	c *= 0.25
	n1 := len(x[0])
	n2 := len(x)
	di := make([]float64, 3)
	for i2 := 1; i2 < n2; i2++ {
		x0 := x[i2]
		xm := x[i2-1]
		y0 := y[i2]
		ym := y[i2-1]
		for i1, m1 := 1, 0; i1 < n1; i1, m1 = i1+1, m1+1 {
			d.Get(i1, i2, di)
			csi := c
			if s != nil {
				csi = c * s[i2][i1]
			}
			d11 := di[0] * csi
			d12 := di[1] * csi
			d22 := di[2] * csi
			xa := x0[i1] - xm[m1]
			xb := x0[m1] - xm[i1]
			x1 := xa - xb
			x2 := xa + xb
			y1 := d11*x1 + d12*x2
			y2 := d12*x1 + d22*x2
			ya := y1 + y2
			yb := y1 - y2
			y0[i1] += ya
			y0[m1] -= yb
			ym[i1] += yb
			ym[m1] -= ya
		}
	}
}

// apply22of3 accumulates one outer slice of the 3D 2×2 stencil: four
// body-diagonal differences per sample, 1/16 scaling.
func apply22of3(i3 int, d tensor.Field3, c float64, s, x, y [][][]float64) {
	c *= 0.0625
	n1 := len(x[0][0])
	n2 := len(x[0])
	di := make([]float64, 6)
	for i2 := 1; i2 < n2; i2++ {
		x00 := x[i3][i2]
		x0m := x[i3][i2-1]
		xm0 := x[i3-1][i2]
		xmm := x[i3-1][i2-1]
		y00 := y[i3][i2]
		y0m := y[i3][i2-1]
		ym0 := y[i3-1][i2]
		ymm := y[i3-1][i2-1]
		for i1, m1 := 1, 0; i1 < n1; i1, m1 = i1+1, m1+1 {
			d.Get(i1, i2, i3, di)
			csi := c
			if s != nil {
				csi = c * s[i3][i2][i1]
			}
			d11 := di[0] * csi
			d12 := di[1] * csi
			d13 := di[2] * csi
			d22 := di[3] * csi
			d23 := di[4] * csi
			d33 := di[5] * csi
			xa := x00[i1] - xmm[m1]
			xb := x00[m1] - xmm[i1]
			xc := x0m[i1] - xm0[m1]
			xd := xm0[i1] - x0m[m1]
			x1 := xa - xb + xc + xd
			x2 := xa + xb - xc + xd
			x3 := xa + xb + xc - xd
			y1 := d11*x1 + d12*x2 + d13*x3
			y2 := d12*x1 + d22*x2 + d23*x3
			y3 := d13*x1 + d23*x2 + d33*x3
			ya := y1 + y2 + y3
			y00[i1] += ya
			ymm[m1] -= ya
			yb := y1 - y2 + y3
			y0m[i1] += yb
			ym0[m1] -= yb
			yc := y1 + y2 - y3
			ym0[i1] += yc
			y0m[m1] -= yc
			yd := y1 - y2 - y3
			ymm[i1] += yd
			y00[m1] -= yd
		}
	}
}
