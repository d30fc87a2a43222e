package smooth

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/grid"
	"github.com/katalvlaran/lvlsmooth/lowpass"
	"github.com/katalvlaran/lvlsmooth/tensor"
)

// Filter solves (I + c·G'DG) y = x. One Filter may be reused across
// many solves; apart from the cached SmoothL low-pass it holds no
// per-call state.
type Filter struct {
	small  float64
	niter  int
	kernel *diffusion.Kernel
	pc     bool
	log    zerolog.Logger

	// SmoothL cache, rebuilt whenever kmax changes.
	lpf  *lowpass.Filter
	lpfK float64
}

// New validates opts and constructs a Filter.
func New(opts Options) (*Filter, error) {
	if opts.Small <= 0 {
		return nil, ErrBadTolerance
	}
	if opts.Niter < 1 {
		return nil, ErrBadIterations
	}
	k := opts.Kernel
	if k == nil {
		var err error
		if k, err = diffusion.NewKernel(diffusion.DefaultOptions()); err != nil {
			return nil, err
		}
	}
	return &Filter{
		small:  opts.Small,
		niter:  opts.Niter,
		kernel: k,
		pc:     opts.Precondition,
		log:    opts.Logger,
	}, nil
}

// Apply1 solves the 1D system exactly. With no cross terms I+c·G'DG is
// a symmetric tridiagonal matrix, factored and solved in a single
// forward elimination and back substitution. A nil s means unit
// per-sample gain; x and y may share storage.
func (f *Filter) Apply1(c float64, s, x, y []float64) error {
	n1 := len(x)
	if n1 == 0 {
		return grid.ErrEmptyGrid
	}
	if len(y) != n1 || (s != nil && len(s) != n1) {
		return grid.ErrShapeMismatch
	}

	// Subdiagonal of I+c·G'DG; e[0] and e[n1] stay zero so the single
	// elimination loop needs no boundary cases.
	e := make([]float64, n1+1)
	if s != nil {
		c = -0.5 * c
		for i1 := 1; i1 < n1; i1++ {
			e[i1] = c * (s[i1] + s[i1-1])
		}
	} else {
		c = -c
		for i1 := 1; i1 < n1; i1++ {
			e[i1] = c
		}
	}

	// Forward elimination. The eliminated subdiagonal entries become
	// the back-substitution multipliers, stored back into e in place.
	t := 1.0 - e[0] - e[1]
	y[0] = x[0] / t
	for i1 := 1; i1 < n1; i1++ {
		ei := e[i1]
		di := 1.0 - ei - e[i1+1]
		e[i1] = ei / t
		t = di - ei*e[i1]
		y[i1] = (x[i1] - ei*y[i1-1]) / t
	}

	// Back substitution.
	for i1 := n1 - 1; i1 > 0; i1-- {
		y[i1-1] -= e[i1] * y[i1]
	}
	return nil
}

// Apply2 solves (I + c·G'DG) y = x for rank-2 arrays by conjugate
// gradients, preconditioned if the Filter was built that way. A nil d
// means identity tensors; a nil s means unit per-sample gain. x and y
// must not alias the same storage.
func (f *Filter) Apply2(d tensor.Field2, c float64, s, x, y [][]float64) error {
	if err := grid.Same2(x, y); err != nil {
		return err
	}
	if s != nil {
		if err := grid.Same2(s, x); err != nil {
			return err
		}
	}
	a := func(u, v [][]float64) {
		grid.Copy2(u, v)
		// Shapes were validated above; the kernel cannot fail here.
		_ = f.kernel.Apply2(d, c, s, u, v)
	}
	grid.Copy2(x, y) // y = x is the CG starting guess
	if f.pc {
		f.msolve2(a, newPrecond2(d, c, s, x), x, y)
	} else {
		f.solve2(a, x, y)
	}
	return nil
}

// Apply3 solves (I + c·G'DG) y = x for rank-3 arrays.
// Returns diffusion.ErrUnsupportedStencil when the kernel's stencil has
// no 3D extension.
func (f *Filter) Apply3(d tensor.Field3, c float64, s, x, y [][][]float64) error {
	if err := grid.Same3(x, y); err != nil {
		return err
	}
	if s != nil {
		if err := grid.Same3(s, x); err != nil {
			return err
		}
	}
	if !f.kernel.Stencil().Has3D() {
		return diffusion.ErrUnsupportedStencil
	}
	a := func(u, v [][][]float64) {
		grid.Copy3(u, v)
		_ = f.kernel.Apply3(d, c, s, u, v)
	}
	grid.Copy3(x, y)
	if f.pc {
		f.msolve3(a, newPrecond3(d, c, s, x), x, y)
	} else {
		f.solve3(a, x, y)
	}
	return nil
}
