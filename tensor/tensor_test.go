package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlsmooth/grid"
	"github.com/katalvlaran/lvlsmooth/tensor"
)

// TestIdentity_Coefficients verifies the identity sentinel fields.
func TestIdentity_Coefficients(t *testing.T) {
	d2 := make([]float64, 3)
	tensor.Identity2{}.Get(7, 9, d2)
	assert.Equal(t, []float64{1, 0, 1}, d2, "Identity2 is the unit tensor everywhere")

	d3 := make([]float64, 6)
	tensor.Identity3{}.Get(1, 2, 3, d3)
	assert.Equal(t, []float64{1, 0, 0, 1, 0, 1}, d3, "Identity3 is the unit tensor everywhere")
}

// TestConst_Coefficients verifies constant coefficient fields.
func TestConst_Coefficients(t *testing.T) {
	c2 := tensor.Const2{D11: 2, D12: -1, D22: 3}
	d2 := make([]float64, 3)
	c2.Get(0, 0, d2)
	assert.Equal(t, []float64{2, -1, 3}, d2, "Const2 returns its coefficients at every sample")
}

// TestEigen2_Reconstruction verifies D = (au-av)uu' + av·I for a known
// eigenvector.
func TestEigen2_Reconstruction(t *testing.T) {
	n1, n2 := 2, 2
	u1 := grid.New2(n1, n2)
	u2 := grid.New2(n1, n2)
	au := grid.New2(n1, n2)
	av := grid.New2(n1, n2)
	// u = (cos30°, sin30°), au=2, av=0.5 everywhere.
	c, s := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	grid.Fill2(c, u1)
	grid.Fill2(s, u2)
	grid.Fill2(2.0, au)
	grid.Fill2(0.5, av)
	e := tensor.NewEigen2(u1, u2, au, av)

	d := make([]float64, 3)
	e.Get(1, 1, d)
	assert.InDelta(t, (2-0.5)*c*c+0.5, d[0], 1e-12, "d11")
	assert.InDelta(t, (2-0.5)*c*s, d[1], 1e-12, "d12")
	assert.InDelta(t, (2-0.5)*s*s+0.5, d[2], 1e-12, "d22")

	// Unit eigenvalues collapse to the identity tensor.
	e.SetEigenvalues(1.0, 1.0)
	e.Get(0, 0, d)
	assert.InDelta(t, 1.0, d[0], 1e-12, "unit eigenvalues give d11=1")
	assert.InDelta(t, 0.0, d[1], 1e-12, "unit eigenvalues give d12=0")
	assert.InDelta(t, 1.0, d[2], 1e-12, "unit eigenvalues give d22=1")
}

// TestEigen2_DeepCopyAndRestore verifies constructor deep copies and
// the eigenvalue save/override/restore sequence.
func TestEigen2_DeepCopyAndRestore(t *testing.T) {
	u1 := [][]float64{{1, 0}}
	u2 := [][]float64{{0, 1}}
	au := [][]float64{{4, 5}}
	av := [][]float64{{1, 2}}
	e := tensor.NewEigen2(u1, u2, au, av)

	au[0][0] = -99 // mutating the source must not reach the field
	d := make([]float64, 3)
	e.Get(0, 0, d)
	assert.InDelta(t, 4.0, d[0], 1e-12, "NewEigen2 must deep-copy its inputs")

	sau := grid.New2(2, 1)
	sav := grid.New2(2, 1)
	e.GetEigenvalues(sau, sav)
	e.SetEigenvalues(0.0, 1.0)
	e.SetEigenvalueFields(sau, sav)
	e.Get(1, 0, d)
	assert.InDelta(t, 2.0, d[0], 1e-12, "restore must bring back saved eigenvalues")
}

// TestEigen3_OrthonormalTriple verifies D = au·uu'+av·vv'+aw·ww' with
// v = w × u for an axis-aligned frame.
func TestEigen3_OrthonormalTriple(t *testing.T) {
	one := grid.New3(1, 1, 1)
	zero := grid.New3(1, 1, 1)
	grid.Fill3(1.0, one)
	au := grid.New3(1, 1, 1)
	av := grid.New3(1, 1, 1)
	aw := grid.New3(1, 1, 1)
	grid.Fill3(3.0, au)
	grid.Fill3(2.0, av)
	grid.Fill3(1.0, aw)

	// u = e1, w = e3, so v = w × u = e2.
	e := tensor.NewEigen3(one, zero, zero, zero, zero, one, au, av, aw)
	d := make([]float64, 6)
	e.Get(0, 0, 0, d)
	assert.InDelta(t, 3.0, d[0], 1e-12, "d11 = au")
	assert.InDelta(t, 2.0, d[3], 1e-12, "d22 = av")
	assert.InDelta(t, 1.0, d[5], 1e-12, "d33 = aw")
	assert.InDelta(t, 0.0, d[1]+d[2]+d[4], 1e-12, "axis frame has no cross terms")
}
