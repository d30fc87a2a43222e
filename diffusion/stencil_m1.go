package diffusion

import "github.com/katalvlaran/lvlsmooth/tensor"

// The mx1 stencils approximate each derivative with a centered
// antisymmetric FIR gradient: taps at offsets ±1..±nc with the
// coefficients below. D71 and D91 share one loop; only the coefficient
// table differs. c[0] is unused padding so c[k] pairs with offset k.
var (
	c71 = []float64{0, 0.830893, -0.227266, 0.042877}
	c91 = []float64{0, 0.8947167, -0.3153471, 0.1096895, -0.0259358}
)

// maxM1Taps bounds the index rings below (largest family member is 9×1).
const maxM1Taps = 4

// indexRing holds clamped rolling neighbor indices for one axis:
// m[k] = index at offset -k, p[0] = current index, p[k] = offset +k.
// Indices below 0 were never advanced past 0; indices beyond n-1 are
// clamped to n-1, reproducing the replicated-edge boundary exactly.
type indexRing struct {
	nc   int
	n    int
	m, p [maxM1Taps + 1]int
}

// reset prepares the ring so that the first advance yields the index
// state for i = 0.
func (r *indexRing) reset(nc, n int) {
	r.nc = nc
	r.n = n
	for k := 0; k <= nc; k++ {
		r.m[k] = 0
		r.p[k] = k - 1 // p[0] stays 0 after first advance; p[k] becomes k
	}
	r.p[0] = 0
}

// advance rotates the ring to the next sample and clamps the leading
// edge to n-1.
func (r *indexRing) advance() {
	for k := r.nc; k >= 2; k-- {
		r.m[k] = r.m[k-1]
	}
	r.m[1] = r.p[0]
	for k := 0; k < r.nc; k++ {
		r.p[k] = r.p[k+1]
	}
	r.p[r.nc]++
	for k := 1; k <= r.nc; k++ {
		if r.p[k] >= r.n {
			r.p[k] = r.n - 1
		}
	}
}

// apply71 accumulates the 7×1 stencil in 2D.
func apply71(d tensor.Field2, c float64, s, x, y [][]float64) {
	applyM1(c71, d, c, s, x, y)
}

// apply91 accumulates the 9×1 stencil in 2D.
func apply91(d tensor.Field2, c float64, s, x, y [][]float64) {
	applyM1(c91, d, c, s, x, y)
}

// apply71of3 accumulates one outer slice of the 3D 7×1 stencil.
func apply71of3(i3 int, d tensor.Field3, c float64, s, x, y [][][]float64) {
	applyM1of3(c71, i3, d, c, s, x, y)
}

// applyM1 is the shared 2D loop of the mx1 family. Both axes roll an
// indexRing; the gradient along axis 1 reads the current row at ring
// offsets, the gradient along axis 2 reads neighbor rows at the
// current column, and the flux scatters back through the same taps.
func applyM1(cs []float64, d tensor.Field2, c float64, s, x, y [][]float64) {
	nc := len(cs) - 1
	n1 := len(x[0])
	n2 := len(x)
	di := make([]float64, 3)
	var r2, r1 indexRing
	r2.reset(nc, n2)
	for i2 := 0; i2 < n2; i2++ {
		r2.advance()
		x0 := x[r2.p[0]]
		y0 := y[r2.p[0]]
		r1.reset(nc, n1)
		for i1 := 0; i1 < n1; i1++ {
			r1.advance()
			d.Get(i1, i2, di)
			csi := c
			if s != nil {
				csi = c * s[i2][i1]
			}
			d11 := di[0] * csi
			d12 := di[1] * csi
			d22 := di[2] * csi
			p0 := r1.p[0]
			var x1, x2 float64
			for k := 1; k <= nc; k++ {
				x1 += cs[k] * (x0[r1.p[k]] - x0[r1.m[k]])
				x2 += cs[k] * (x[r2.p[k]][p0] - x[r2.m[k]][p0])
			}
			y1 := d11*x1 + d12*x2
			y2 := d12*x1 + d22*x2
			for k := 1; k <= nc; k++ {
				cy1 := cs[k] * y1
				y0[r1.p[k]] += cy1
				y0[r1.m[k]] -= cy1
				cy2 := cs[k] * y2
				y[r2.p[k]][p0] += cy2
				y[r2.m[k]][p0] -= cy2
			}
		}
	}
}

// applyM1of3 is the shared 3D loop of the mx1 family. The outer axis
// needs no ring: its clamped neighbor indexes are fixed for the whole
// slice.
func applyM1of3(cs []float64, i3 int, d tensor.Field3, c float64, s, x, y [][][]float64) {
	nc := len(cs) - 1
	n1 := len(x[0][0])
	n2 := len(x[0])
	n3 := len(x)
	di := make([]float64, 6)
	var i3m, i3p [maxM1Taps + 1]int
	for k := 1; k <= nc; k++ {
		i3m[k] = i3 - k
		if i3m[k] < 0 {
			i3m[k] = 0
		}
		i3p[k] = i3 + k
		if i3p[k] >= n3 {
			i3p[k] = n3 - 1
		}
	}
	x3 := x[i3]
	y3 := y[i3]
	var r2, r1 indexRing
	r2.reset(nc, n2)
	for i2 := 0; i2 < n2; i2++ {
		r2.advance()
		x0 := x3[r2.p[0]]
		y0 := y3[r2.p[0]]
		r1.reset(nc, n1)
		for i1 := 0; i1 < n1; i1++ {
			r1.advance()
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
			p0 := r1.p[0]
			var x1, x2, x3v float64
			for k := 1; k <= nc; k++ {
				x1 += cs[k] * (x0[r1.p[k]] - x0[r1.m[k]])
				x2 += cs[k] * (x3[r2.p[k]][p0] - x3[r2.m[k]][p0])
				x3v += cs[k] * (x[i3p[k]][r2.p[0]][p0] - x[i3m[k]][r2.p[0]][p0])
			}
			y1 := d11*x1 + d12*x2 + d13*x3v
			y2 := d12*x1 + d22*x2 + d23*x3v
			y3v := d13*x1 + d23*x2 + d33*x3v
			for k := 1; k <= nc; k++ {
				cy1 := cs[k] * y1
				y0[r1.p[k]] += cy1
				y0[r1.m[k]] -= cy1
				cy2 := cs[k] * y2
				y3[r2.p[k]][p0] += cy2
				y3[r2.m[k]][p0] -= cy2
				cy3 := cs[k] * y3v
				y[i3p[k]][r2.p[0]][p0] += cy3
				y[i3m[k]][r2.p[0]][p0] -= cy3
			}
		}
	}
}
