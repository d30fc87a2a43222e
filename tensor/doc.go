// Package tensor defines the diffusion-tensor capabilities consumed by
// the lvlsmooth stencil operators, plus ready-made field values.
//
// 🚀 What does tensor give you?
//
//   - Field2 / Field3: the narrow read-only capability the operators
//     need — fill a fixed-size buffer with the upper triangle of a
//     symmetric positive-(semi)definite matrix at one sample
//   - Identity2 / Identity3: explicit identity-field sentinels for
//     isotropic diffusion (passed by value, never shared mutable state)
//   - Const2 / Const3: spatially constant coefficient fields
//   - Eigen2 / Eigen3: fields stored as per-sample eigenvectors and
//     eigenvalues, reconstructing coefficients on demand; eigenvalues
//     can be overridden and restored, which is how the semblance
//     consumer projects smoothing onto one structural direction
//
// Coefficient layout:
//
//	rank 2: d = {d11, d12, d22}
//	rank 3: d = {d11, d12, d13, d22, d23, d33}
//
// Invariant (caller responsibility, unchecked): the matrix described by
// every filled buffer is symmetric positive-semidefinite. A field that
// violates this makes the implicit solver diverge or converge slowly.
//
// Concurrency: fields are safe for concurrent reads. The eigenvalue
// override/restore sequence on Eigen2/Eigen3 is NOT thread-safe and
// must be externally serialized against concurrent Get calls.
package tensor
