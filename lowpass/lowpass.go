package lowpass

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlsmooth/grid"
)

// ErrBadCutoff indicates a cutoff wavenumber outside (0, 0.5).
var ErrBadCutoff = errors.New("lowpass: cutoff must lie in (0, 0.5) cycles/sample")

// aerror is the design amplitude error of all filters in this package.
const aerror = 0.01

// Filter is an isotropic FIR low-pass filter for a fixed cutoff
// wavenumber. Immutable once designed.
type Filter struct {
	kmax float64
	kh   int // half length per axis
	h1   []float64
	h2   [][]float64
	h3   [][][]float64
}

// Design builds a low-pass filter passing wavenumbers up to kmax
// (cycles/sample, 0 < kmax < 0.5). Transition width and cutoff follow
// the solver's convention: kwidth = 0.5−kmax, kupper = kmax+kwidth/2.
// Complexity: O(taps³) once.
func Design(kmax float64) (*Filter, error) {
	if !(kmax > 0.0 && kmax < 0.5) {
		return nil, ErrBadCutoff
	}
	kwidth := 0.5 - kmax
	kupper := kmax + 0.5*kwidth
	kw := newKaiserWindow(aerror, kwidth)
	nh := (int(kw.length)+1)/2*2 + 1
	kh := (nh - 1) / 2

	f := &Filter{kmax: kmax, kh: kh}

	// 1D taps: windowed sinc.
	f.h1 = make([]float64, nh)
	kus := 2.0 * kupper
	for i1 := 0; i1 < nh; i1++ {
		x1 := float64(i1 - kh)
		f.h1[i1] = kw.evaluate(x1) * kus * h1(kus*x1)
	}

	// 2D taps: windowed Bessel-J1 ring response.
	f.h2 = make([][]float64, nh)
	kus2 := kus * kus
	for i2 := 0; i2 < nh; i2++ {
		f.h2[i2] = make([]float64, nh)
		x2 := float64(i2 - kh)
		w2 := kw.evaluate(x2)
		for i1 := 0; i1 < nh; i1++ {
			x1 := float64(i1 - kh)
			r := math.Hypot(x1, x2)
			f.h2[i2][i1] = w2 * kw.evaluate(x1) * kus2 * h2(kus*r)
		}
	}

	// 3D taps: windowed spherical response.
	f.h3 = make([][][]float64, nh)
	kus3 := kus2 * kus
	for i3 := 0; i3 < nh; i3++ {
		f.h3[i3] = make([][]float64, nh)
		x3 := float64(i3 - kh)
		w3 := kw.evaluate(x3)
		for i2 := 0; i2 < nh; i2++ {
			f.h3[i3][i2] = make([]float64, nh)
			x2 := float64(i2 - kh)
			w2 := kw.evaluate(x2)
			for i1 := 0; i1 < nh; i1++ {
				x1 := float64(i1 - kh)
				r := math.Sqrt(x1*x1 + x2*x2 + x3*x3)
				f.h3[i3][i2][i1] = w3 * w2 * kw.evaluate(x1) * kus3 * h3(kus*r)
			}
		}
	}
	return f, nil
}

// Kmax returns the cutoff wavenumber this filter was designed for.
func (f *Filter) Kmax() float64 { return f.kmax }

// Length returns the filter length per axis (odd).
func (f *Filter) Length() int { return 2*f.kh + 1 }

// Apply1 convolves a rank-1 array with the 1D taps, replicating edge
// samples. x and y may be the same slice.
func (f *Filter) Apply1(x, y []float64) {
	n1 := len(x)
	t := make([]float64, n1)
	for i1 := 0; i1 < n1; i1++ {
		var v float64
		for j1, hj := range f.h1 {
			v += hj * x[clamp(i1+j1-f.kh, n1)]
		}
		t[i1] = v
	}
	copy(y, t)
}

// Apply2 convolves a rank-2 array with the 2D taps, replicating edge
// samples independently per axis. x and y may be the same array.
func (f *Filter) Apply2(x, y [][]float64) {
	n1 := len(x[0])
	n2 := len(x)
	t := grid.Like2(x)
	for i2 := 0; i2 < n2; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			var v float64
			for j2, h2row := range f.h2 {
				xr := x[clamp(i2+j2-f.kh, n2)]
				for j1, hj := range h2row {
					v += hj * xr[clamp(i1+j1-f.kh, n1)]
				}
			}
			t[i2][i1] = v
		}
	}
	grid.Copy2(t, y)
}

// Apply3 convolves a rank-3 array with the 3D taps, replicating edge
// samples, fanning the outer loop out across workers. x and y may be
// the same array.
func (f *Filter) Apply3(x, y [][][]float64) {
	n1 := len(x[0][0])
	n2 := len(x[0])
	n3 := len(x)
	t := grid.Like3(x)
	grid.Loop(0, n3, 1, func(i3 int) {
		for i2 := 0; i2 < n2; i2++ {
			for i1 := 0; i1 < n1; i1++ {
				var v float64
				for j3, h3plane := range f.h3 {
					xp := x[clamp(i3+j3-f.kh, n3)]
					for j2, h3row := range h3plane {
						xr := xp[clamp(i2+j2-f.kh, n2)]
						for j1, hj := range h3row {
							v += hj * xr[clamp(i1+j1-f.kh, n1)]
						}
					}
				}
				t[i3][i2][i1] = v
			}
		}
	})
	grid.Copy3(t, y)
}

// clamp confines i to [0, n-1], the zero-slope boundary extension.
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// h1 is the ideal 1D low-pass response at half-cut scaling: sinc.
func h1(r float64) float64 {
	if r == 0.0 {
		return 1.0
	}
	return math.Sin(math.Pi*r) / (math.Pi * r)
}

// h2 is the ideal circularly symmetric 2D response.
func h2(r float64) float64 {
	if r == 0.0 {
		return math.Pi / 4.0
	}
	return besselJ1(math.Pi*r) / (2.0 * r)
}

// h3 is the ideal spherically symmetric 3D response.
func h3(r float64) float64 {
	if r == 0.0 {
		return math.Pi / 6.0
	}
	pir := math.Pi * r
	return 0.5 * math.Pi * (math.Sin(pir) - pir*math.Cos(pir)) / (pir * pir * pir)
}
