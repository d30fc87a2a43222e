// Package semblance computes structure-oriented semblance, the ratio
//
//	s = smooth2( smooth1(f)² ) / smooth2( smooth1(f²) )
//
// clamped to [0,1], where smooth1 smooths along a chosen
// eigen-direction of a structure tensor field and smooth2 smooths
// along the complementary directions. Values near 1 mark coherent
// structure aligned with the chosen direction; values near 0 mark
// discordant or noisy samples.
//
// Both smoothings are implicit diffusion solves (smooth.Filter) with
// the D71 high-accuracy stencil; a half-width hw maps to diffusion
// scale hw·(hw+1)/6, so the smoothing extent matches a boxcar of the
// same half-width. The direction projection zeroes all but the
// selected eigenvalues of the tensor field for the duration of a
// solve and restores them afterwards, so a tensor field must not be
// shared across concurrent semblance calls.
package semblance
