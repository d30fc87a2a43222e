package tensor

import "github.com/katalvlaran/lvlsmooth/grid"

// Eigen2 is a 2D tensor field stored as an eigen-decomposition:
// per-sample unit eigenvector u = (u1,u2) with eigenvalue au, and the
// orthogonal eigenvector v = (-u2,u1) with eigenvalue av. Coefficients
// are reconstructed on every Get as
//
//	D = (au-av)·uu' + av·I.
//
// Eigenvalues can be overridden (e.g. zeroed for all but one
// direction) and later restored; that sequence is not thread-safe.
type Eigen2 struct {
	u1, u2 [][]float64
	au, av [][]float64
}

// NewEigen2 constructs an eigen tensor field from per-sample
// eigenvector components and eigenvalues, all with one shape.
// All inputs are deep-copied.
func NewEigen2(u1, u2, au, av [][]float64) *Eigen2 {
	return &Eigen2{
		u1: grid.Clone2(u1),
		u2: grid.Clone2(u2),
		au: grid.Clone2(au),
		av: grid.Clone2(av),
	}
}

// Get fills d with {d11, d12, d22} at sample (i1,i2).
func (t *Eigen2) Get(i1, i2 int, d []float64) {
	au := t.au[i2][i1]
	av := t.av[i2][i1]
	u1 := t.u1[i2][i1]
	u2 := t.u2[i2][i1]
	au -= av
	d[0] = au*u1*u1 + av
	d[1] = au * u1 * u2
	d[2] = au*u2*u2 + av
}

// GetEigenvalues copies the per-sample eigenvalues into au and av.
func (t *Eigen2) GetEigenvalues(au, av [][]float64) {
	grid.Copy2(t.au, au)
	grid.Copy2(t.av, av)
}

// SetEigenvalues overrides every sample's eigenvalues with au and av.
func (t *Eigen2) SetEigenvalues(au, av float64) {
	grid.Fill2(au, t.au)
	grid.Fill2(av, t.av)
}

// SetEigenvalueFields overrides the per-sample eigenvalues from au and
// av, typically to restore values saved by GetEigenvalues.
func (t *Eigen2) SetEigenvalueFields(au, av [][]float64) {
	grid.Copy2(au, t.au)
	grid.Copy2(av, t.av)
}

// Eigen3 is a 3D tensor field stored as an eigen-decomposition:
// per-sample unit eigenvectors u and w with eigenvalues au and aw, and
// the third eigenvector v = w × u with eigenvalue av. Coefficients are
// reconstructed on every Get as
//
//	D = au·uu' + av·vv' + aw·ww'.
type Eigen3 struct {
	u1, u2, u3 [][][]float64
	w1, w2, w3 [][][]float64
	au, av, aw [][][]float64
}

// NewEigen3 constructs an eigen tensor field from per-sample
// eigenvector components and eigenvalues, all with one shape.
// All inputs are deep-copied.
func NewEigen3(u1, u2, u3, w1, w2, w3, au, av, aw [][][]float64) *Eigen3 {
	return &Eigen3{
		u1: grid.Clone3(u1), u2: grid.Clone3(u2), u3: grid.Clone3(u3),
		w1: grid.Clone3(w1), w2: grid.Clone3(w2), w3: grid.Clone3(w3),
		au: grid.Clone3(au), av: grid.Clone3(av), aw: grid.Clone3(aw),
	}
}

// Get fills d with {d11, d12, d13, d22, d23, d33} at sample (i1,i2,i3).
func (t *Eigen3) Get(i1, i2, i3 int, d []float64) {
	au := t.au[i3][i2][i1]
	av := t.av[i3][i2][i1]
	aw := t.aw[i3][i2][i1]
	u1 := t.u1[i3][i2][i1]
	u2 := t.u2[i3][i2][i1]
	u3 := t.u3[i3][i2][i1]
	w1 := t.w1[i3][i2][i1]
	w2 := t.w2[i3][i2][i1]
	w3 := t.w3[i3][i2][i1]
	// v = w × u completes the orthonormal triple.
	v1 := w2*u3 - w3*u2
	v2 := w3*u1 - w1*u3
	v3 := w1*u2 - w2*u1
	d[0] = au*u1*u1 + av*v1*v1 + aw*w1*w1
	d[1] = au*u1*u2 + av*v1*v2 + aw*w1*w2
	d[2] = au*u1*u3 + av*v1*v3 + aw*w1*w3
	d[3] = au*u2*u2 + av*v2*v2 + aw*w2*w2
	d[4] = au*u2*u3 + av*v2*v3 + aw*w2*w3
	d[5] = au*u3*u3 + av*v3*v3 + aw*w3*w3
}

// GetEigenvalues copies the per-sample eigenvalues into au, av and aw.
func (t *Eigen3) GetEigenvalues(au, av, aw [][][]float64) {
	grid.Copy3(t.au, au)
	grid.Copy3(t.av, av)
	grid.Copy3(t.aw, aw)
}

// SetEigenvalues overrides every sample's eigenvalues.
func (t *Eigen3) SetEigenvalues(au, av, aw float64) {
	grid.Fill3(au, t.au)
	grid.Fill3(av, t.av)
	grid.Fill3(aw, t.aw)
}

// SetEigenvalueFields overrides the per-sample eigenvalues from au, av
// and aw, typically to restore values saved by GetEigenvalues.
func (t *Eigen3) SetEigenvalueFields(au, av, aw [][][]float64) {
	grid.Copy3(au, t.au)
	grid.Copy3(av, t.av)
	grid.Copy3(aw, t.aw)
}
