package semblance

import (
	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/grid"
	"github.com/katalvlaran/lvlsmooth/smooth"
	"github.com/katalvlaran/lvlsmooth/tensor"
)

// Solver constants shared by both smoothers. The tight tolerance and
// high iteration cap matter here: semblance is a ratio of two smoothed
// images, and residual error in either biases it.
const (
	solverSmall = 0.001
	solverNiter = 1000
	prefilterK  = 0.35
)

// Filter computes local semblance from two smoothing half-widths:
// halfWidth1 for the inner smoothing applied before squaring,
// halfWidth2 for the outer smoothing applied after. A half-width of 0
// disables that smoothing.
//
// A Filter is not safe for concurrent use: it caches a low-pass
// prefilter internally, and the tensor fields passed to its methods
// have their eigenvalues overridden for the duration of a call.
type Filter struct {
	inner laplacianSmoother
	outer laplacianSmoother
}

// New constructs a semblance filter from the two half-widths.
func New(halfWidth1, halfWidth2 int) (*Filter, error) {
	if halfWidth1 < 0 || halfWidth2 < 0 {
		return nil, ErrBadHalfWidth
	}
	kernel, err := diffusion.NewKernel(diffusion.Options{
		Stencil:  diffusion.D71,
		Passes:   1,
		Parallel: true,
	})
	if err != nil {
		return nil, err
	}
	opts := smooth.DefaultOptions()
	opts.Small = solverSmall
	opts.Niter = solverNiter
	opts.Kernel = kernel
	lsf, err := smooth.New(opts)
	if err != nil {
		return nil, err
	}
	return &Filter{
		inner: laplacianSmoother{scale: halfWidthScale(halfWidth1), lsf: lsf},
		outer: laplacianSmoother{scale: halfWidthScale(halfWidth2), lsf: lsf},
	}, nil
}

// halfWidthScale converts a half-width to the diffusion scale whose
// smoothing extent matches a boxcar of that half-width.
func halfWidthScale(hw int) float64 {
	return float64(hw*(hw+1)) / 6.0
}

// Semblance1 computes local semblance of a 1D array f into s.
// f and s may share storage.
func (f *Filter) Semblance1(x, s []float64) error {
	if len(x) == 0 {
		return grid.ErrEmptyGrid
	}
	if len(s) != len(x) {
		return grid.ErrShapeMismatch
	}
	n1 := len(x)
	sn := make([]float64, n1)
	sd := make([]float64, n1)
	if err := f.Inner1(x, sn); err != nil {
		return err
	}
	for i1 := range sn {
		sn[i1] *= sn[i1]
	}
	if err := f.Outer1(sn, sn); err != nil {
		return err
	}
	for i1 := range sd {
		sd[i1] = x[i1] * x[i1]
	}
	if err := f.Inner1(sd, sd); err != nil {
		return err
	}
	if err := f.Outer1(sd, sd); err != nil {
		return err
	}
	for i1 := range s {
		s[i1] = ratio(sn[i1], sd[i1])
	}
	return nil
}

// Semblance2 computes local semblance of a 2D array x into s, smoothing
// first along direction d of the tensor field t and then along the
// complementary direction. x and s may share storage; t's eigenvalues
// are overridden during the call and restored before it returns.
func (f *Filter) Semblance2(d Direction2, t *tensor.Eigen2, x, s [][]float64) error {
	if !d.valid() {
		return ErrBadDirection
	}
	if err := grid.Same2(x, s); err != nil {
		return err
	}
	sn := grid.Like2(x)
	sd := grid.Like2(x)
	if err := f.Inner2(d, t, x, sn); err != nil {
		return err
	}
	grid.Mul2(sn, sn, sn)
	if err := f.Outer2(d.Orthogonal(), t, sn, sn); err != nil {
		return err
	}
	grid.Mul2(x, x, sd)
	if err := f.Inner2(d, t, sd, sd); err != nil {
		return err
	}
	if err := f.Outer2(d.Orthogonal(), t, sd, sd); err != nil {
		return err
	}
	for i2 := range s {
		for i1 := range s[i2] {
			s[i2][i1] = ratio(sn[i2][i1], sd[i2][i1])
		}
	}
	return nil
}

// Semblance3 computes local semblance of a 3D array x into s; see
// Semblance2.
func (f *Filter) Semblance3(d Direction3, t *tensor.Eigen3, x, s [][][]float64) error {
	if !d.valid() {
		return ErrBadDirection
	}
	if err := grid.Same3(x, s); err != nil {
		return err
	}
	sn := grid.Like3(x)
	sd := grid.Like3(x)
	if err := f.Inner3(d, t, x, sn); err != nil {
		return err
	}
	grid.Mul3(sn, sn, sn)
	if err := f.Outer3(d.Orthogonal(), t, sn, sn); err != nil {
		return err
	}
	grid.Mul3(x, x, sd)
	if err := f.Inner3(d, t, sd, sd); err != nil {
		return err
	}
	if err := f.Outer3(d.Orthogonal(), t, sd, sd); err != nil {
		return err
	}
	for i3 := range s {
		for i2 := range s[i3] {
			for i1 := range s[i3][i2] {
				s[i3][i2][i1] = ratio(sn[i3][i2][i1], sd[i3][i2][i1])
			}
		}
	}
	return nil
}

// ratio clamps the semblance quotient sn/sd to [0,1], mapping a
// non-positive denominator (or negative numerator) to 0.
func ratio(sn, sd float64) float64 {
	switch {
	case sd <= 0.0 || sn < 0.0:
		return 0.0
	case sd < sn:
		return 1.0
	default:
		return sn / sd
	}
}

// Inner1 applies the inner smoothing to a 1D array.
// x and y may share storage.
func (f *Filter) Inner1(x, y []float64) error {
	return f.inner.apply1(x, y)
}

// Inner2 applies the inner smoothing to a 2D array along direction d
// of the tensor field t.
func (f *Filter) Inner2(d Direction2, t *tensor.Eigen2, x, y [][]float64) error {
	if !d.valid() {
		return ErrBadDirection
	}
	return f.inner.apply2(d, t, x, y)
}

// Inner3 applies the inner smoothing to a 3D array along direction d
// of the tensor field t.
func (f *Filter) Inner3(d Direction3, t *tensor.Eigen3, x, y [][][]float64) error {
	if !d.valid() {
		return ErrBadDirection
	}
	return f.inner.apply3(d, t, x, y)
}

// Outer1 applies the outer smoothing to a 1D array.
// x and y may share storage.
func (f *Filter) Outer1(x, y []float64) error {
	return f.outer.apply1(x, y)
}

// Outer2 applies the outer smoothing to a 2D array along direction d.
// Semblance2 passes the orthogonal of its inner direction here; callers
// composing the smoothings themselves choose d directly.
func (f *Filter) Outer2(d Direction2, t *tensor.Eigen2, x, y [][]float64) error {
	if !d.valid() {
		return ErrBadDirection
	}
	return f.outer.apply2(d, t, x, y)
}

// Outer3 applies the outer smoothing to a 3D array along direction d.
func (f *Filter) Outer3(d Direction3, t *tensor.Eigen3, x, y [][][]float64) error {
	if !d.valid() {
		return ErrBadDirection
	}
	return f.outer.apply3(d, t, x, y)
}
