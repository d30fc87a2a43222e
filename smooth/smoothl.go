package smooth

import "github.com/katalvlaran/lvlsmooth/lowpass"

// ensureLowpass rebuilds the cached low-pass filter when the cutoff
// changes. Not synchronized: a Filter shared by goroutines must use
// one kmax, or callers must serialize SmoothL calls.
func (f *Filter) ensureLowpass(kmax float64) error {
	if f.lpf == nil || f.lpfK != kmax {
		lpf, err := lowpass.Design(kmax)
		if err != nil {
			return err
		}
		f.lpf = lpf
		f.lpfK = kmax
	}
	return nil
}

// SmoothL2 computes y = lowpass(x) with an isotropic zero-phase filter
// passing wavenumbers below kmax cycles/sample, the stronger edge
// compensation for gradient stencils. The designed filter is cached on
// the Filter and reused until kmax changes. x and y may share storage.
// Returns lowpass.ErrBadCutoff unless 0 < kmax < 0.5.
func (f *Filter) SmoothL2(kmax float64, x, y [][]float64) error {
	if err := f.ensureLowpass(kmax); err != nil {
		return err
	}
	f.lpf.Apply2(x, y)
	return nil
}

// SmoothL3 is SmoothL2 for rank-3 arrays.
func (f *Filter) SmoothL3(kmax float64, x, y [][][]float64) error {
	if err := f.ensureLowpass(kmax); err != nil {
		return err
	}
	f.lpf.Apply3(x, y)
	return nil
}
