package diffusion

import "errors"

// Sentinel errors for kernel configuration and application.
var (
	// ErrUnknownStencil indicates a Stencil value outside the closed set.
	ErrUnknownStencil = errors.New("diffusion: unknown stencil")
	// ErrUnsupportedStencil indicates a stencil without a 3D extension
	// applied to a rank-3 array (D24, D91).
	ErrUnsupportedStencil = errors.New("diffusion: stencil not supported for 3D arrays")
	// ErrBadPasses indicates Passes < 1.
	ErrBadPasses = errors.New("diffusion: number of passes must be at least 1")
)

// Stencil selects the finite-difference approximation of derivatives.
// In each name, the first digit is the number of samples used in the
// direction of the derivative, the second the number in the orthogonal
// direction. Names correspond to 2D stencils; D21, D22, D33 and D71
// have natural 3D extensions.
//
// Note that the stencil implied by G'DG is larger than the one used to
// approximate G: a 2×2 derivative approximation implies a 3×3 stencil
// for G'DG.
type Stencil int

const (
	// D21 is a 2×1 stencil (3 taps in 2D, 4 in 3D) for isotropic
	// diffusion only; any supplied tensor field is ignored.
	D21 Stencil = iota
	// D22 is the default 2×2 stencil (4 taps in 2D, 8 in 3D).
	D22
	// D24 is a 2×4 stencil (8 taps in 2D); no 3D extension.
	D24
	// D33 is a Scharr-weighted 3×3 stencil (6 taps in 2D, 18 in 3D).
	D33
	// D71 is a 7×1 stencil (6 taps in both 2D and 3D).
	D71
	// D91 is a 9×1 stencil (8 taps in 2D); no 3D extension.
	D91
)

// String returns the stencil's conventional name.
func (s Stencil) String() string {
	switch s {
	case D21:
		return "D21"
	case D22:
		return "D22"
	case D24:
		return "D24"
	case D33:
		return "D33"
	case D71:
		return "D71"
	case D91:
		return "D91"
	}
	return "D??"
}

// Taps2 returns the number of non-zero G'DG coefficients in 2D.
func (s Stencil) Taps2() int { return stencilTable[s].taps2 }

// Taps3 returns the number of non-zero G'DG coefficients in 3D, or 0
// when the stencil has no 3D extension.
func (s Stencil) Taps3() int { return stencilTable[s].taps3 }

// TensorAware reports whether the stencil reads the tensor field.
// D21 is isotropic-only and ignores tensors.
func (s Stencil) TensorAware() bool { return stencilTable[s].tensorAware }

// Has3D reports whether a 3D extension exists.
func (s Stencil) Has3D() bool { return stencilTable[s].apply3 != nil }

func (s Stencil) valid() bool { return s >= D21 && s <= D91 }

// Options configures a diffusion Kernel.
//
// Fields:
//   - Stencil  — one of the six named stencils (default D22).
//   - Passes   — number of kernel passes per Apply; pass k>0 treats the
//     previous output as the new input (default 1).
//   - Parallel — fan 3D applications out across worker goroutines
//     (default true).
type Options struct {
	Stencil  Stencil
	Passes   int
	Parallel bool
}

// DefaultOptions returns Options with the default D22 stencil, a
// single pass, and parallel execution enabled.
func DefaultOptions() Options {
	return Options{
		Stencil:  D22,
		Passes:   1,
		Parallel: true,
	}
}
