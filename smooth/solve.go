package smooth

import (
	"math"

	"github.com/katalvlaran/lvlsmooth/grid"
)

// op2 and op3 apply a linear operator, y = Op·x. The solvers only ever
// see A = I+c·G'DG and the diagonal preconditioner through these.
type (
	op2 func(x, y [][]float64)
	op3 func(x, y [][][]float64)
)

// solve2 runs plain conjugate gradients on A·x = b. x holds the
// starting guess on entry and the best iterate on return; a residual
// above Small·‖b‖ after Niter iterations is logged, not returned.
func (f *Filter) solve2(a op2, b, x [][]float64) {
	d := grid.Like2(b)
	q := grid.Like2(b)
	r := grid.Like2(b)
	grid.Copy2(b, r)
	a(x, q)
	grid.Axpy2(-1.0, q, r) // r = b - A·x
	grid.Copy2(r, d)
	delta := grid.Dot2(r, r)
	bnorm := grid.Norm2(b)
	rnorm := math.Sqrt(delta)
	rnormBegin := rnorm
	rnormSmall := bnorm * f.small
	f.log.Debug().Float64("bnorm", bnorm).Float64("rnorm", rnorm).Msg("cg: begin")
	var iter int
	for iter = 0; iter < f.niter && rnorm > rnormSmall; iter++ {
		f.log.Trace().Int("iter", iter).
			Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("cg")
		a(d, q)
		alpha := delta / grid.Dot2(d, q)
		grid.Axpy2(alpha, d, x)
		grid.Axpy2(-alpha, q, r)
		deltaOld := delta
		delta = grid.Dot2(r, r)
		beta := delta / deltaOld
		grid.Xpay2(beta, r, d)
		rnorm = math.Sqrt(delta)
	}
	f.log.Debug().Int("iter", iter).
		Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("cg: end")
}

// solve3 is solve2 for rank-3 arrays, with one refinement: every 100th
// iteration replaces the incremental residual update with the true
// residual b−A·x, so rounding drift cannot stall convergence on large
// volumes.
func (f *Filter) solve3(a op3, b, x [][][]float64) {
	d := grid.Like3(b)
	q := grid.Like3(b)
	r := grid.Like3(b)
	grid.Copy3(b, r)
	a(x, q)
	grid.Axpy3(-1.0, q, r)
	grid.Copy3(r, d)
	delta := grid.Dot3(r, r)
	bnorm := grid.Norm3(b)
	rnorm := math.Sqrt(delta)
	rnormBegin := rnorm
	rnormSmall := bnorm * f.small
	f.log.Debug().Float64("bnorm", bnorm).Float64("rnorm", rnorm).Msg("cg: begin")
	var iter int
	for iter = 0; iter < f.niter && rnorm > rnormSmall; iter++ {
		f.log.Trace().Int("iter", iter).
			Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("cg")
		a(d, q)
		alpha := delta / grid.Dot3(d, q)
		grid.Axpy3(alpha, d, x)
		if iter%100 < 99 {
			grid.Axpy3(-alpha, q, r)
		} else {
			grid.Copy3(b, r)
			a(x, q)
			grid.Axpy3(-1.0, q, r)
		}
		deltaOld := delta
		delta = grid.Dot3(r, r)
		beta := delta / deltaOld
		grid.Xpay3(beta, r, d)
		rnorm = math.Sqrt(delta)
	}
	f.log.Debug().Int("iter", iter).
		Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("cg: end")
}

// msolve2 runs preconditioned conjugate gradients on A·x = b with the
// diagonal preconditioner m ≈ A⁻¹. The search metric is r'Mr, but the
// stopping test stays on the plain residual norm so tolerances mean
// the same thing with and without preconditioning.
func (f *Filter) msolve2(a, m op2, b, x [][]float64) {
	d := grid.Like2(b)
	q := grid.Like2(b)
	r := grid.Like2(b)
	s := grid.Like2(b)
	grid.Copy2(b, r)
	a(x, q)
	grid.Axpy2(-1.0, q, r)
	m(r, s)
	grid.Copy2(s, d)
	delta := grid.Dot2(r, s)
	bnorm := grid.Norm2(b)
	rnorm := grid.Norm2(r)
	rnormBegin := rnorm
	rnormSmall := bnorm * f.small
	f.log.Debug().Float64("bnorm", bnorm).Float64("rnorm", rnorm).Msg("pcg: begin")
	var iter int
	for iter = 0; iter < f.niter && rnorm > rnormSmall; iter++ {
		f.log.Trace().Int("iter", iter).
			Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("pcg")
		a(d, q)
		alpha := delta / grid.Dot2(d, q)
		grid.Axpy2(alpha, d, x)
		grid.Axpy2(-alpha, q, r)
		m(r, s)
		deltaOld := delta
		delta = grid.Dot2(r, s)
		beta := delta / deltaOld
		grid.Xpay2(beta, s, d)
		rnorm = grid.Norm2(r)
	}
	f.log.Debug().Int("iter", iter).
		Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("pcg: end")
}

// msolve3 is msolve2 for rank-3 arrays, with the same periodic true
// residual refresh as solve3.
func (f *Filter) msolve3(a, m op3, b, x [][][]float64) {
	d := grid.Like3(b)
	q := grid.Like3(b)
	r := grid.Like3(b)
	s := grid.Like3(b)
	grid.Copy3(b, r)
	a(x, q)
	grid.Axpy3(-1.0, q, r)
	m(r, s)
	grid.Copy3(s, d)
	delta := grid.Dot3(r, s)
	bnorm := grid.Norm3(b)
	rnorm := grid.Norm3(r)
	rnormBegin := rnorm
	rnormSmall := bnorm * f.small
	f.log.Debug().Float64("bnorm", bnorm).Float64("rnorm", rnorm).Msg("pcg: begin")
	var iter int
	for iter = 0; iter < f.niter && rnorm > rnormSmall; iter++ {
		f.log.Trace().Int("iter", iter).
			Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("pcg")
		a(d, q)
		alpha := delta / grid.Dot3(d, q)
		grid.Axpy3(alpha, d, x)
		if iter%100 < 99 {
			grid.Axpy3(-alpha, q, r)
		} else {
			grid.Copy3(b, r)
			a(x, q)
			grid.Axpy3(-1.0, q, r)
		}
		m(r, s)
		deltaOld := delta
		delta = grid.Dot3(r, s)
		beta := delta / deltaOld
		grid.Xpay3(beta, s, d)
		rnorm = grid.Norm3(r)
	}
	f.log.Debug().Int("iter", iter).
		Float64("rnorm", rnorm).Float64("ratio", rnorm/rnormBegin).Msg("pcg: end")
}
