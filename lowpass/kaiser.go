package lowpass

import "math"

// aMin is the stopband attenuation (dB) below which a rectangular
// window already suffices; the Kaiser shape parameter is zero there.
const aMin = 20.96

// kaiserWindow evaluates a Kaiser window designed from a maximum
// absolute error (ripple) and a transition width in normalized
// frequency.
type kaiserWindow struct {
	length float64
	alpha  float64
	scale  float64
	xxmax  float64
}

// newKaiserWindow designs a window for the specified error and width
// using Kaiser's empirical formulas for the shape parameter α and the
// window length.
func newKaiserWindow(err, width float64) kaiserWindow {
	a := -20.0 * math.Log10(err)
	d := 0.9222
	if a > aMin {
		d = (a - 7.95) / 14.36
	}
	length := d / width
	var alpha float64
	switch {
	case a <= aMin:
		alpha = 0.0
	case a <= 50.0:
		alpha = 0.5842*math.Pow(a-aMin, 0.4) + 0.07886*(a-aMin)
	default:
		alpha = 0.1102 * (a - 8.7)
	}
	return kaiserWindow{
		length: length,
		alpha:  alpha,
		scale:  1.0 / besselI0(alpha),
		xxmax:  0.25 * length * length,
	}
}

// evaluate returns the window value at offset x from the center,
// zero beyond the window's half length.
func (w kaiserWindow) evaluate(x float64) float64 {
	xx := x * x
	if xx > w.xxmax {
		return 0.0
	}
	return w.scale * besselI0(w.alpha*math.Sqrt(1.0-xx/w.xxmax))
}

// besselI0 is the zeroth-order modified Bessel function of the first
// kind, by power series; converges quickly for the small arguments a
// Kaiser window produces.
func besselI0(x float64) float64 {
	s := 1.0
	ds := 1.0
	d := 0.0
	for {
		d += 2.0
		ds *= (x * x) / (d * d)
		s += ds
		if ds <= s*2.22e-16 {
			return s
		}
	}
}

// besselJ1 is the first-order Bessel function of the first kind, by
// the standard rational approximations (accurate to ~1e-8, far below
// the 0.01 design error of the filters built from it).
func besselJ1(x float64) float64 {
	ax := math.Abs(x)
	if ax < 8.0 {
		xx := x * x
		num := x * (72362614232.0 +
			xx*(-7895059235.0+
				xx*(242396853.1+
					xx*(-2972611.439+
						xx*(15704.48260+
							xx*(-30.16036606))))))
		den := 144725228442.0 +
			xx*(2300535178.0+
				xx*(18583304.74+
					xx*(99447.43394+
						xx*(376.9991397+
							xx))))
		return num / den
	}
	z := 8.0 / ax
	zz := z * z
	t1 := 1.0 +
		zz*(0.183105e-2+
			zz*(-0.3516396496e-4+
				zz*(0.2457520174e-5+
					zz*(-0.240337019e-6))))
	t2 := 0.04687499995 +
		zz*(-0.2002690873e-3+
			zz*(0.8449199096e-5+
				zz*(-0.88228987e-6+
					zz*0.105787412e-6)))
	am := ax - 2.356194491
	y := math.Sqrt(0.636619772/ax) * (math.Cos(am)*t1 - z*math.Sin(am)*t2)
	if x < 0.0 {
		return -y
	}
	return y
}
