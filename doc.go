// Package lvlsmooth is a library of structure-guided image-smoothing
// operators for seismic and geophysical signal processing — from dense
// sample grids to anisotropic diffusion, implicit solvers and semblance.
//
// 🚀 What is lvlsmooth?
//
//	A pure-Go numeric library that brings together:
//		• Dense grids: rank-1/2/3 float arrays with parallel vector kernels
//		• Diffusion tensors: per-sample SPD coefficient fields & eigen forms
//		• Stencil operators: six finite-difference G'DG stencils (2D & 3D)
//		• Implicit smoothing: CG/PCG solver for (I+c·G'DG)y = x,
//		  with an exact tridiagonal 1D fast path
//		• Edge compensation: binomial 3×3(×3) averaging and an isotropic
//		  Kaiser-designed low-pass filter
//		• Semblance: structure-oriented coherence built on two smoothers
//
// ✨ Why choose lvlsmooth?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Self-adjoint kernels – symmetric gather/scatter keeps systems SPD
//   - Pure Go – no cgo, shared-memory parallelism over worker goroutines
//   - Faithful numerics – boundary clamping and stencil constants pinned
//     down by golden-value tests
//
// Under the hood, everything is organized under six subpackages:
//
//	grid/      — dense rank-1/2/3 sample arrays + dot/axpy/parallel loops
//	tensor/    — Field2/Field3 capabilities, identity & eigen tensor fields
//	diffusion/ — the stencil operator: y += c·s·G'DG·x
//	smooth/    — the implicit solver: (I+c·G'DG)y = x, plus S and L filters
//	lowpass/   — isotropic Kaiser-windowed FIR low-pass design
//	semblance/ — structure-oriented semblance (the principal consumer)
//
// Quick sketch of the data flow:
//
//	    tensors ──┐
//	    x ──► smooth.Filter ──► diffusion.Kernel (inside CG) ──► y
//
// Dive into each package's doc.go for algorithm outlines, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/lvlsmooth
package lvlsmooth
