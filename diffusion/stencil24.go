package diffusion

import "github.com/katalvlaran/lvlsmooth/tensor"

// apply24 accumulates the 2×4 stencil in 2D: the 2×2 diagonal
// differences widened by a lifting term with weight p, which sharpens
// the derivative approximation for highly anisotropic tensors.
// No 3D extension exists.
func apply24(d tensor.Field2, c float64, s, x, y [][]float64) {
	const p = 0.18 // best for high anisotropy
	a := 0.5 * (1.0 + p)
	b := 0.5 * (-p)
	b /= a
	c *= a * a
	n1 := len(x[0])
	n2 := len(x)
	di := make([]float64, 3)
	var i2m2 int
	i2m1, i2p0, i2p1 := 0, 0, 1
	for i2 := 1; i2 < n2; i2++ {
		i2m2, i2m1, i2p0 = i2m1, i2p0, i2p1
		i2p1++
		if i2p1 >= n2 {
			i2p1 = n2 - 1
		}
		xm2, xm1, xp0, xp1 := x[i2m2], x[i2m1], x[i2p0], x[i2p1]
		ym2, ym1, yp0, yp1 := y[i2m2], y[i2m1], y[i2p0], y[i2p1]
		var m2 int
		m1, p0, p1 := 0, 0, 1
		for i1 := 1; i1 < n1; i1++ {
			m2, m1, p0 = m1, p0, p1
			p1++
			if p1 >= n1 {
				p1 = n1 - 1
			}
			d.Get(i1, i2, di)
			csi := c
			if s != nil {
				csi = c * s[i2][i1]
			}
			d11 := di[0] * csi
			d12 := di[1] * csi
			d22 := di[2] * csi
			xa := xp0[p0] - xm1[m1]
			xb := xm1[p0] - xp0[m1]
			x1 := xa + xb + b*(xp1[p0]+xm2[p0]-xp1[m1]-xm2[m1])
			x2 := xa - xb + b*(xp0[p1]+xp0[m2]-xm1[p1]-xm1[m2])
			y1 := d11*x1 + d12*x2
			y2 := d12*x1 + d22*x2
			ya := y1 + y2
			yb := y1 - y2
			yc := b * y1
			yd := b * y2
			yp0[p0] += ya
			ym1[m1] -= ya
			ym1[p0] += yb
			yp0[m1] -= yb
			yp1[p0] += yc
			ym2[m1] -= yc
			ym2[p0] += yc
			yp1[m1] -= yc
			yp0[p1] += yd
			ym1[m2] -= yd
			yp0[m2] += yd
			ym1[p1] -= yd
		}
	}
}
