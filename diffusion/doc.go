// Package diffusion implements the anisotropic diffusion stencil
// operator at the heart of lvlsmooth: a filter that accumulates
//
//	y += c·s·G'DG·x
//
// where G is a finite-difference gradient operator, G' its adjoint,
// D a per-sample SPD tensor field (tensor.Field2/Field3), c a constant
// gain and s an optional per-sample gain.
//
// Algorithm Outline (per stencil):
//  1. For each sample, gather directional differences from a small,
//     stencil-specific set of neighbor taps.
//  2. Multiply the difference vector by the local (scaled) tensor to
//     produce a flux vector.
//  3. Scatter the flux back onto the same taps with the same
//     coefficients used to gather.
//
// The identical gather/scatter pattern in one fused loop makes every
// stencil self-adjoint, so I + c·G'DG stays symmetric positive-definite
// without ever materializing a matrix — which is what lets the smooth
// package solve it with conjugate gradients.
//
// Stencils (closed set, chosen at construction):
//
//	name | taps 2D/3D | tensor-aware | 3D
//	D21  |   3 / 4    | no (isotropic) | yes
//	D22  |   4 / 8    | yes            | yes (default)
//	D24  |   8 / 24   | yes            | no
//	D33  |   6 / 18   | yes            | yes
//	D71  |   6 / 6    | yes            | yes
//	D91  |   8 / 8    | yes            | no
//
// Boundary policy: neighbor indices are clamped to the valid range
// (replicated edges), independently per axis, except D33 which updates
// interior samples only. The clamp arithmetic differs per stencil and
// is reproduced exactly; golden-value tests pin it down.
//
// Concurrency: 3D applications partition the outer dimension into
// `stride` interleaved sweeps (stride = the stencil's outer footprint);
// rows within a sweep fan out across workers, sweeps run one after
// another, so no two concurrent rows ever write the same output cell.
// Correctness comes from index partitioning, not locks. 2D
// applications are serial — they are the per-row unit of 3D work.
//
// Complexity: O(taps·n) per pass over n samples.
package diffusion
