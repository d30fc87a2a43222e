package semblance

import (
	"github.com/katalvlaran/lvlsmooth/grid"
	"github.com/katalvlaran/lvlsmooth/smooth"
	"github.com/katalvlaran/lvlsmooth/tensor"
)

// laplacianSmoother runs one implicit diffusion solve at a fixed scale.
// A zero scale short-circuits to a copy. The tensor-directed forms
// project the field onto the requested direction by zeroing the other
// eigenvalues, low-pass the input at prefilterK to suppress gradient
// error near Nyquist, solve, and restore the saved eigenvalues.
type laplacianSmoother struct {
	scale float64
	lsf   *smooth.Filter
}

func (ls laplacianSmoother) apply1(x, y []float64) error {
	if ls.scale == 0.0 {
		if len(x) != len(y) {
			return grid.ErrShapeMismatch
		}
		grid.Copy1(x, y)
		return nil
	}
	return ls.lsf.Apply1(ls.scale, nil, x, y)
}

func (ls laplacianSmoother) apply2(d Direction2, t *tensor.Eigen2, x, y [][]float64) error {
	if ls.scale == 0.0 {
		if err := grid.Same2(x, y); err != nil {
			return err
		}
		grid.Copy2(x, y)
		return nil
	}
	au := grid.Like2(x)
	av := grid.Like2(x)
	t.GetEigenvalues(au, av)
	dau, dav := d.eigenvalues()
	t.SetEigenvalues(dau, dav)
	defer t.SetEigenvalueFields(au, av)

	sf := grid.Like2(x)
	if err := ls.lsf.SmoothL2(prefilterK, x, sf); err != nil {
		return err
	}
	return ls.lsf.Apply2(t, ls.scale, nil, sf, y)
}

func (ls laplacianSmoother) apply3(d Direction3, t *tensor.Eigen3, x, y [][][]float64) error {
	if ls.scale == 0.0 {
		if err := grid.Same3(x, y); err != nil {
			return err
		}
		grid.Copy3(x, y)
		return nil
	}
	au := grid.Like3(x)
	av := grid.Like3(x)
	aw := grid.Like3(x)
	t.GetEigenvalues(au, av, aw)
	dau, dav, daw := d.eigenvalues()
	t.SetEigenvalues(dau, dav, daw)
	defer t.SetEigenvalueFields(au, av, aw)

	sf := grid.Like3(x)
	if err := ls.lsf.SmoothL3(prefilterK, x, sf); err != nil {
		return err
	}
	return ls.lsf.Apply3(t, ls.scale, nil, sf, y)
}
