package smooth

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlsmooth/diffusion"
)

// Sentinel errors for solver construction.
var (
	// ErrBadTolerance - Small is not strictly positive.
	ErrBadTolerance = errors.New("smooth: tolerance must be > 0")
	// ErrBadIterations - Niter is not strictly positive.
	ErrBadIterations = errors.New("smooth: iteration limit must be > 0")
)

// Options configures a Filter.
type Options struct {
	// Small is the relative residual threshold: CG stops once
	// ‖x−A·y‖ ≤ Small·‖x‖. Must be > 0.
	Small float64
	// Niter caps the number of CG iterations. Must be > 0.
	Niter int
	// Kernel is the diffusion operator G'DG used inside A = I+c·G'DG.
	// nil selects diffusion.NewKernel(diffusion.DefaultOptions()),
	// the isotropic-accurate D22 stencil.
	Kernel *diffusion.Kernel
	// Precondition enables the diagonal preconditioner for 2D and 3D
	// solves. It is derived from the D22 scatter pattern and pays off
	// when the tensor coefficients vary strongly across the grid.
	Precondition bool
	// Logger receives Debug records on solve entry/exit and Trace
	// records per CG iteration.
	Logger zerolog.Logger
}

// DefaultOptions returns the configuration used by the higher-level
// filters: Small=0.01, Niter=100, the default D22 kernel, no
// preconditioning, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Small:  0.01,
		Niter:  100,
		Logger: zerolog.Nop(),
	}
}
