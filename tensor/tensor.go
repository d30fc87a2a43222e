package tensor

// Field2 supplies 2D diffusion-tensor coefficients per sample.
// Get fills d with {d11, d12, d22}, the upper triangle of a symmetric
// positive-(semi)definite 2×2 matrix at sample (i1,i2). Implementations
// must not retain d.
type Field2 interface {
	Get(i1, i2 int, d []float64)
}

// Field3 supplies 3D diffusion-tensor coefficients per sample.
// Get fills d with {d11, d12, d13, d22, d23, d33}, the upper triangle
// of a symmetric positive-(semi)definite 3×3 matrix at (i1,i2,i3).
type Field3 interface {
	Get(i1, i2, i3 int, d []float64)
}

// Identity2 is the constant 2D identity field, used for isotropic
// diffusion. It is a value, not shared mutable state.
type Identity2 struct{}

// Get fills d with the identity tensor {1, 0, 1}.
func (Identity2) Get(_, _ int, d []float64) {
	d[0] = 1
	d[1] = 0
	d[2] = 1
}

// Identity3 is the constant 3D identity field.
type Identity3 struct{}

// Get fills d with the identity tensor {1, 0, 0, 1, 0, 1}.
func (Identity3) Get(_, _, _ int, d []float64) {
	d[0] = 1
	d[1] = 0
	d[2] = 0
	d[3] = 1
	d[4] = 0
	d[5] = 1
}

// Const2 is a spatially constant 2D field with coefficients
// {D11, D12, D22}.
type Const2 struct {
	D11, D12, D22 float64
}

// Get fills d with the constant coefficients.
func (c Const2) Get(_, _ int, d []float64) {
	d[0] = c.D11
	d[1] = c.D12
	d[2] = c.D22
}

// Const3 is a spatially constant 3D field with coefficients
// {D11, D12, D13, D22, D23, D33}.
type Const3 struct {
	D11, D12, D13, D22, D23, D33 float64
}

// Get fills d with the constant coefficients.
func (c Const3) Get(_, _, _ int, d []float64) {
	d[0] = c.D11
	d[1] = c.D12
	d[2] = c.D13
	d[3] = c.D22
	d[4] = c.D23
	d[5] = c.D33
}
