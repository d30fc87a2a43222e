package diffusion

import (
	"github.com/katalvlaran/lvlsmooth/grid"
	"github.com/katalvlaran/lvlsmooth/tensor"
)

// apply2Func accumulates one 2D kernel pass into y.
type apply2Func func(d tensor.Field2, c float64, s, x, y [][]float64)

// apply3Func accumulates one outer slice i3 of a 3D kernel pass into y.
type apply3Func func(i3 int, d tensor.Field3, c float64, s, x, y [][][]float64)

// stencilInfo collects everything the kernel needs to know about one
// stencil: its tap counts, whether it reads tensors, its 2D and 3D
// loops, and how the 3D outer dimension is swept. A nil apply3 marks a
// stencil without a 3D extension.
type stencilInfo struct {
	taps2, taps3 int
	tensorAware  bool
	start3       int // first outer index of a 3D pass
	stride3      int // outer footprint: sweeps needed for disjoint writes
	trim3        int // outer indices excluded at the far edge
	apply2       apply2Func
	apply3       apply3Func
}

// stencilTable drives all dispatch; adding a stencil is a table entry,
// not new control flow.
var stencilTable = [...]stencilInfo{
	D21: {taps2: 3, taps3: 4, start3: 0, stride3: 2,
		apply2: apply21, apply3: apply21of3},
	D22: {taps2: 4, taps3: 8, tensorAware: true, start3: 1, stride3: 2,
		apply2: apply22, apply3: apply22of3},
	D24: {taps2: 8, tensorAware: true,
		apply2: apply24},
	D33: {taps2: 6, taps3: 18, tensorAware: true, start3: 1, stride3: 3, trim3: 1,
		apply2: apply33, apply3: apply33of3},
	D71: {taps2: 6, taps3: 6, tensorAware: true, start3: 0, stride3: 7,
		apply2: apply71, apply3: apply71of3},
	D91: {taps2: 8, taps3: 8, tensorAware: true,
		apply2: apply91},
}

// Kernel applies the stencil operator y += c·s·G'DG·x. It is stateless
// across calls and safe for concurrent use.
//
// The accumulation into y is what makes the kernel composable: given
// y = 0 it computes y = G'DGx; given y = x it computes y = (I+G'DG)x.
// Input and output must therefore be distinct arrays.
type Kernel struct {
	opts Options
	info *stencilInfo
}

// NewKernel constructs a kernel for the given options.
// Returns ErrUnknownStencil or ErrBadPasses for invalid configuration.
func NewKernel(opts Options) (*Kernel, error) {
	if !opts.Stencil.valid() {
		return nil, ErrUnknownStencil
	}
	if opts.Passes < 1 {
		return nil, ErrBadPasses
	}
	return &Kernel{opts: opts, info: &stencilTable[opts.Stencil]}, nil
}

// Stencil returns the stencil this kernel was built with.
func (k *Kernel) Stencil() Stencil { return k.opts.Stencil }

// Apply2 accumulates y += c·s·G'DG·x for rank-2 arrays, repeated for
// the configured number of passes (pass k>0 re-reads the prior output).
// A nil tensor field d means the identity tensor; a nil s means unit
// per-sample gain. x and y must have identical shapes and must not
// alias the same storage.
func (k *Kernel) Apply2(d tensor.Field2, c float64, s, x, y [][]float64) error {
	if err := grid.Same2(x, y); err != nil {
		return err
	}
	if s != nil {
		if err := grid.Same2(s, x); err != nil {
			return err
		}
	}
	if d == nil {
		d = tensor.Identity2{}
	}
	for pass := 0; pass < k.opts.Passes; pass++ {
		if pass > 0 {
			x = grid.Clone2(y)
		}
		k.info.apply2(d, c, s, x, y)
	}
	return nil
}

// Apply3 accumulates y += c·s·G'DG·x for rank-3 arrays.
// Returns ErrUnsupportedStencil for stencils without a 3D extension
// (D24, D91); no partial output is written in that case.
func (k *Kernel) Apply3(d tensor.Field3, c float64, s, x, y [][][]float64) error {
	if k.info.apply3 == nil {
		return ErrUnsupportedStencil
	}
	if err := grid.Same3(x, y); err != nil {
		return err
	}
	if s != nil {
		if err := grid.Same3(s, x); err != nil {
			return err
		}
	}
	if d == nil {
		d = tensor.Identity3{}
	}
	n3 := len(x)
	start, stride := k.info.start3, k.info.stride3
	stop := n3 - k.info.trim3
	for pass := 0; pass < k.opts.Passes; pass++ {
		if pass > 0 {
			x = grid.Clone3(y)
		}
		if k.opts.Parallel {
			// One sweep per residue class: rows stride apart never share
			// output cells, so each sweep fans out race-free; sweeps run
			// strictly one after another.
			for sweep := 0; sweep < stride; sweep++ {
				grid.Loop(start+sweep, stop, stride, func(i3 int) {
					k.info.apply3(i3, d, c, s, x, y)
				})
			}
		} else {
			for i3 := start; i3 < stop; i3++ {
				k.info.apply3(i3, d, c, s, x, y)
			}
		}
	}
	return nil
}
