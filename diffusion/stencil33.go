package diffusion

import "github.com/katalvlaran/lvlsmooth/tensor"

// apply33 accumulates the 3×3 stencil in 2D, a Scharr-weighted central
// difference. Only interior samples are updated; the outermost row and
// column of taps stay untouched instead of being clamped.
func apply33(d tensor.Field2, c float64, s, x, y [][]float64) {
	const p = 0.182962 // Scharr, best for high anisotropy
	a := 0.5 - p       // ~ 10/32
	b := 0.5 * p       // ~  3/32
	b /= a
	c *= a * a
	n1 := len(x[0])
	n2 := len(x)
	di := make([]float64, 3)
	for i2 := 1; i2 < n2-1; i2++ {
		xm, x0, xp := x[i2-1], x[i2], x[i2+1]
		ym, y0, yp := y[i2-1], y[i2], y[i2+1]
		for m1, i1, p1 := 0, 1, 2; p1 < n1; m1, i1, p1 = m1+1, i1+1, p1+1 {
			d.Get(i1, i2, di)
			csi := c
			if s != nil {
				csi = c * s[i2][i1]
			}
			d11 := di[0] * csi
			d12 := di[1] * csi
			d22 := di[2] * csi
			xa := b * (xp[p1] - xm[m1])
			xb := b * (xm[p1] - xp[m1])
			x1 := x0[p1] - x0[m1] + xa + xb
			x2 := xp[i1] - xm[i1] + xa - xb
			y1 := d11*x1 + d12*x2
			y2 := d12*x1 + d22*x2
			ya := b * (y1 + y2)
			yb := b * (y1 - y2)
			y0[p1] += y1
			y0[m1] -= y1
			yp[p1] += ya
			ym[m1] -= ya
			ym[p1] += yb
			yp[m1] -= yb
			yp[i1] += y2
			ym[i1] -= y2
		}
	}
}

// apply33of3 accumulates one outer slice of the 3D 3×3 stencil.
// Differences are grouped by the product of Scharr weights that scales
// them: aa terms are used once, ab terms twice, bb terms three times.
func apply33of3(i3 int, d tensor.Field3, c float64, s, x, y [][][]float64) {
	const p = 0.174654 // Scharr, best for high anisotropy
	a := 1.0 - 2.0*p
	b := p
	aa := 0.5 * a * a
	ab := 0.5 * a * b
	bb := 0.5 * b * b
	n1 := len(x[0][0])
	n2 := len(x[0])
	di := make([]float64, 6)
	for i2 := 1; i2 < n2-1; i2++ {
		xmm, xm0, xmp := x[i3-1][i2-1], x[i3-1][i2], x[i3-1][i2+1]
		x0m, x00, x0p := x[i3][i2-1], x[i3][i2], x[i3][i2+1]
		xpm, xp0, xpp := x[i3+1][i2-1], x[i3+1][i2], x[i3+1][i2+1]
		ymm, ym0, ymp := y[i3-1][i2-1], y[i3-1][i2], y[i3-1][i2+1]
		y0m, y00, y0p := y[i3][i2-1], y[i3][i2], y[i3][i2+1]
		ypm, yp0, ypp := y[i3+1][i2-1], y[i3+1][i2], y[i3+1][i2+1]
		for m1, i1, p1 := 0, 1, 2; p1 < n1; m1, i1, p1 = m1+1, i1+1, p1+1 {
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
			xmmm, xmm0, xmmp := xmm[m1], xmm[i1], xmm[p1]
			xm0m, xm00, xm0p := xm0[m1], xm0[i1], xm0[p1]
			xmpm, xmp0, xmpp := xmp[m1], xmp[i1], xmp[p1]
			x0mm, x0m0, x0mp := x0m[m1], x0m[i1], x0m[p1]
			x00m, x00p := x00[m1], x00[p1]
			x0pm, x0p0, x0pp := x0p[m1], x0p[i1], x0p[p1]
			xpmm, xpm0, xpmp := xpm[m1], xpm[i1], xpm[p1]
			xp0m, xp00, xp0p := xp0[m1], xp0[i1], xp0[p1]
			xppm, xpp0, xppp := xpp[m1], xpp[i1], xpp[p1]
			x00p00m := x00p - x00m // aa differences, used once
			x0p00m0 := x0p0 - x0m0
			xp00m00 := xp00 - xm00
			xmp0mm0 := xmp0 - xmm0 // ab differences, used twice
			xpp0pm0 := xpp0 - xpm0
			xpm0mm0 := xpm0 - xmm0
			xpp0mp0 := xpp0 - xmp0
			xm0pm0m := xm0p - xm0m
			xp0pp0m := xp0p - xp0m
			xp0mm0m := xp0m - xm0m
			xp0pm0p := xp0p - xm0p
			x0mp0mm := x0mp - x0mm
			x0pp0pm := x0pp - x0pm
			x0pm0mm := x0pm - x0mm
			x0pp0mp := x0pp - x0mp
			xpppmmm := xppp - xmmm // bb differences, used thrice
			xppmmmp := xppm - xmmp
			xpmpmpm := xpmp - xmpm
			xmpppmm := xmpp - xpmm
			x1 := aa*x00p00m +
				ab*(x0pp0pm+x0mp0mm+xp0pp0m+xm0pm0m) +
				bb*(xpppmmm-xppmmmp+xpmpmpm+xmpppmm)
			x2 := aa*x0p00m0 +
				ab*(x0pp0mp+x0pm0mm+xpp0pm0+xmp0mm0) +
				bb*(xpppmmm+xppmmmp-xpmpmpm+xmpppmm)
			x3 := aa*xp00m00 +
				ab*(xp0pm0p+xp0mm0m+xpp0mp0+xpm0mm0) +
				bb*(xpppmmm+xppmmmp+xpmpmpm-xmpppmm)
			y1 := d11*x1 + d12*x2 + d13*x3
			y2 := d12*x1 + d22*x2 + d23*x3
			y3 := d13*x1 + d23*x2 + d33*x3
			aa00p := aa * y1
			y00[p1] += aa00p
			y00[m1] -= aa00p
			aa0p0 := aa * y2
			y0p[i1] += aa0p0
			y0m[i1] -= aa0p0
			aap00 := aa * y3
			yp0[i1] += aap00
			ym0[i1] -= aap00
			ab0pp := ab * (y1 + y2)
			y0p[p1] += ab0pp
			y0m[m1] -= ab0pp
			ab0mp := ab * (y1 - y2)
			y0m[p1] += ab0mp
			y0p[m1] -= ab0mp
			abp0p := ab * (y1 + y3)
			yp0[p1] += abp0p
			ym0[m1] -= abp0p
			abm0p := ab * (y1 - y3)
			ym0[p1] += abm0p
			yp0[m1] -= abm0p
			abpp0 := ab * (y2 + y3)
			ypp[i1] += abpp0
			ymm[i1] -= abpp0
			abmp0 := ab * (y2 - y3)
			ymp[i1] += abmp0
			ypm[i1] -= abmp0
			bbppp := bb * (y1 + y2 + y3)
			ypp[p1] += bbppp
			ymm[m1] -= bbppp
			bbmmp := bb * (y1 - y2 - y3)
			ymm[p1] += bbmmp
			ypp[m1] -= bbmmp
			bbpmp := bb * (y1 - y2 + y3)
			ypm[p1] += bbpmp
			ymp[m1] -= bbpmp
			bbmpp := bb * (y1 + y2 - y3)
			ymp[p1] += bbmpp
			ypm[m1] -= bbmpp
		}
	}
}
