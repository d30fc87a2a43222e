// Package grid provides dense rank-1, rank-2 and rank-3 sample arrays
// for the lvlsmooth operators, together with the vector kernels the
// iterative solvers are built from.
//
// 🚀 What does grid give you?
//
//   - Allocation & cloning: New2/New3, Like2/Like3, deep Copy2/Copy3
//   - Validation: Check2/Check3 (rectangular, non-empty) and
//     Same2/Same3 (exact shape match) with sentinel errors
//   - Vector kernels: Dot, Axpy (y += a·x), Xpay (y = x + a·y) and
//     elementwise Mul, for ranks 2 and 3
//   - Loop: a data-parallel fan-out over an index range, used to
//     parallelize rank-3 work across the outermost dimension
//
// Conventions:
//
//	Arrays are nested slices indexed x[i2][i1] (rank 2) and x[i3][i2][i1]
//	(rank 3), where i1 varies fastest. The outermost index (i2 or i3) is
//	the unit of parallelism.
//
// Rank-1 inner loops delegate to gonum's floats package; rank-3 kernels
// fan out across worker goroutines, one slice of the outer dimension at
// a time, and reduce per-slice partial results without locks.
//
// Complexity: all kernels are O(n) in the number of samples; Loop adds
// only goroutine scheduling overhead, skipped entirely for short ranges.
package grid
