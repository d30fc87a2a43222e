package smooth

import "github.com/katalvlaran/lvlsmooth/grid"

// SmoothS2 computes y = S'Sx, a 3×3 binomial average with weights
// 1/4, 1/8, 1/16 and replicated edges. It zeros the Nyquist
// wavenumber, compensating the frequency response of the gradient
// stencils near grid edges. x and y may share storage: rows of x are
// staged through a three-row ring before y is written.
// Complexity: O(n1·n2).
func SmoothS2(x, y [][]float64) error {
	if err := grid.Same2(x, y); err != nil {
		return err
	}
	n1, n2 := len(x[0]), len(x)
	n1m, n2m := n1-1, n2-1
	t := [3][]float64{
		make([]float64, n1),
		make([]float64, n1),
		make([]float64, n1),
	}
	grid.Copy1(x[0], t[0])
	grid.Copy1(x[0], t[1])
	for i2 := 0; i2 < n2; i2++ {
		i2m, i2p := i2, i2
		if i2 > 0 {
			i2m = i2 - 1
		}
		if i2 < n2m {
			i2p = i2 + 1
		}
		grid.Copy1(x[i2p], t[i2p%3])
		x2m, x20, x2p := t[i2m%3], t[i2%3], t[i2p%3]
		y2 := y[i2]
		for i1 := 0; i1 < n1; i1++ {
			i1m, i1p := i1, i1
			if i1 > 0 {
				i1m = i1 - 1
			}
			if i1 < n1m {
				i1p = i1 + 1
			}
			y2[i1] = 0.2500*(x20[i1]) +
				0.1250*(x20[i1m]+x20[i1p]+x2m[i1]+x2p[i1]) +
				0.0625*(x2m[i1m]+x2m[i1p]+x2p[i1m]+x2p[i1p])
		}
	}
	return nil
}

// SmoothS3 computes y = S'Sx, the 3×3×3 binomial average with weights
// 1/8, 1/16, 1/32, 1/64 and replicated edges. x and y may share
// storage; planes of x are staged through a three-plane ring.
func SmoothS3(x, y [][][]float64) error {
	if err := grid.Same3(x, y); err != nil {
		return err
	}
	n1, n2, n3 := len(x[0][0]), len(x[0]), len(x)
	n1m, n2m, n3m := n1-1, n2-1, n3-1
	t := [3][][]float64{
		grid.Like2(x[0]),
		grid.Like2(x[0]),
		grid.Like2(x[0]),
	}
	grid.Copy2(x[0], t[0])
	grid.Copy2(x[0], t[1])
	for i3 := 0; i3 < n3; i3++ {
		i3m, i3p := i3, i3
		if i3 > 0 {
			i3m = i3 - 1
		}
		if i3 < n3m {
			i3p = i3 + 1
		}
		grid.Copy2(x[i3p], t[i3p%3])
		x3m, x30, x3p := t[i3m%3], t[i3%3], t[i3p%3]
		y30 := y[i3]
		for i2 := 0; i2 < n2; i2++ {
			i2m, i2p := i2, i2
			if i2 > 0 {
				i2m = i2 - 1
			}
			if i2 < n2m {
				i2p = i2 + 1
			}
			x3m2m, x3m20, x3m2p := x3m[i2m], x3m[i2], x3m[i2p]
			x302m, x3020, x302p := x30[i2m], x30[i2], x30[i2p]
			x3p2m, x3p20, x3p2p := x3p[i2m], x3p[i2], x3p[i2p]
			y3020 := y30[i2]
			for i1 := 0; i1 < n1; i1++ {
				i1m, i1p := i1, i1
				if i1 > 0 {
					i1m = i1 - 1
				}
				if i1 < n1m {
					i1p = i1 + 1
				}
				y3020[i1] = 0.125000*(x3020[i1]) +
					0.062500*(x3020[i1m]+x3020[i1p]+
						x302m[i1]+x302p[i1]+
						x3m20[i1]+x3p20[i1]) +
					0.031250*(x3m20[i1m]+x3m20[i1p]+
						x3m2m[i1]+x3m2p[i1]+
						x302m[i1m]+x302m[i1p]+
						x302p[i1m]+x302p[i1p]+
						x3p20[i1m]+x3p20[i1p]+
						x3p2m[i1]+x3p2p[i1]) +
					0.015625*(x3m2m[i1m]+x3m2m[i1p]+
						x3m2p[i1m]+x3m2p[i1p]+
						x3p2m[i1m]+x3p2m[i1p]+
						x3p2p[i1m]+x3p2p[i1p])
			}
		}
	}
	return nil
}
