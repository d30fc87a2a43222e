// Package lowpass designs and applies the isotropic low-pass FIR
// filters that lvlsmooth's implicit solver uses to compensate for the
// poor high-wavenumber behavior of its finite-difference stencils.
//
// Algorithm Outline:
//  1. From the cutoff kmax (cycles/sample) derive the transition width
//     kwidth = 0.5 − kmax and the half-amplitude cutoff
//     kupper = kmax + kwidth/2, with amplitude error 0.01.
//  2. Size a Kaiser window from that error and width (the classic
//     α and length formulas), yielding an odd filter length.
//  3. Tabulate the ideal circularly/spherically symmetric low-pass
//     impulse response — sinc in 1D, a Bessel-J1 ring in 2D, a
//     spherical kernel in 3D — tapered by the separable Kaiser window.
//  4. Convolve directly in the space domain, replicating edge samples
//     (zero-slope extrapolation). Input and output may be the same
//     array.
//
// For the cutoffs this library uses (kmax ≈ 0.35) the filter is about
// 15 taps per axis, so direct convolution costs O(taps^rank) per
// sample and needs no transform machinery.
//
// Filters tabulate taps for all three ranks at design time and are
// immutable afterwards, so one Filter is safe for concurrent use.
package lowpass
