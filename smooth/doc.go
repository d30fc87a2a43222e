// Package smooth solves the implicit smoothing equations of lvlsmooth:
// given an input x, it finds y with
//
//	(I + c·G'DG) y = x
//
// where G'DG is a diffusion.Kernel stencil operator. For low
// wavenumbers y approximates the solution of an anisotropic
// inhomogeneous diffusion equation with initial condition x, so the
// filter smooths along the directions implied by the tensors D while
// preserving edges across them.
//
// Algorithm Outline:
//   - 1D, no tensors: I+G'DG collapses to a symmetric tridiagonal
//     matrix, solved exactly by forward elimination and back
//     substitution in one pass. No iteration.
//   - 2D/3D: conjugate gradients on the SPD operator A = I+c·G'DG,
//     starting from y = x, stopping when ‖r‖ ≤ Small·‖x‖ or after
//     Niter iterations. Optionally preconditioned by a diagonal
//     approximation of A⁻¹ built from the tensor coefficients.
//   - Every 100th 3D iteration recomputes the true residual x−A·y in
//     place of the incremental update, bounding floating-point drift.
//
// Non-convergence is soft: the best iterate is returned and the
// configured logger records iteration counts and residual ratios at
// Debug (entry/exit) and Trace (per iteration) levels. Callers that
// need a guarantee must inspect residuals themselves.
//
// Edge compensation:
//
//	The finite-difference gradient in G is poor near the Nyquist
//	wavenumber. SmoothS2/SmoothS3 apply a fast 3×3 (3×3×3) binomial
//	average that zeros Nyquist; SmoothL2/SmoothL3 apply an isotropic
//	low-pass (lowpass.Filter) passing wavenumbers up to kmax. The
//	low-pass filter is built lazily and cached on the Filter, keyed by
//	kmax and invalidated when kmax changes — concurrent SmoothL calls
//	with different cutoffs on one Filter are therefore unsafe.
//
// Complexity: O(Niter · taps · n) for n samples; the tridiagonal fast
// path is O(n).
package smooth
