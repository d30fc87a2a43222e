package diffusion_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/grid"
	"github.com/katalvlaran/lvlsmooth/tensor"
)

// stencils2 lists every stencil with a 2D form.
var stencils2 = []diffusion.Stencil{
	diffusion.D21, diffusion.D22, diffusion.D24,
	diffusion.D33, diffusion.D71, diffusion.D91,
}

// stencils3 lists every stencil with a 3D form.
var stencils3 = []diffusion.Stencil{
	diffusion.D21, diffusion.D22, diffusion.D33, diffusion.D71,
}

func newKernel(t *testing.T, s diffusion.Stencil) *diffusion.Kernel {
	t.Helper()
	opts := diffusion.DefaultOptions()
	opts.Stencil = s
	k, err := diffusion.NewKernel(opts)
	require.NoError(t, err, "NewKernel(%v)", s)
	return k
}

func randArr2(rng *rand.Rand, n1, n2 int) [][]float64 {
	x := grid.New2(n1, n2)
	for i2 := range x {
		for i1 := range x[i2] {
			x[i2][i1] = rng.Float64()*2 - 1
		}
	}
	return x
}

func randArr3(rng *rand.Rand, n1, n2, n3 int) [][][]float64 {
	x := grid.New3(n1, n2, n3)
	for i3 := range x {
		for i2 := range x[i3] {
			for i1 := range x[i3][i2] {
				x[i3][i2][i1] = rng.Float64()*2 - 1
			}
		}
	}
	return x
}

// randEigen2 builds a positive-definite eigen tensor field with random
// orientations.
func randEigen2(rng *rand.Rand, n1, n2 int) *tensor.Eigen2 {
	u1 := grid.New2(n1, n2)
	u2 := grid.New2(n1, n2)
	au := grid.New2(n1, n2)
	av := grid.New2(n1, n2)
	for i2 := 0; i2 < n2; i2++ {
		for i1 := 0; i1 < n1; i1++ {
			a := rng.Float64() * 2 * math.Pi
			u1[i2][i1] = math.Cos(a)
			u2[i2][i1] = math.Sin(a)
			au[i2][i1] = 0.5 + rng.Float64()
			av[i2][i1] = 0.1 + 0.5*rng.Float64()
		}
	}
	return tensor.NewEigen2(u1, u2, au, av)
}

// TestNewKernel_Errors verifies configuration validation.
func TestNewKernel_Errors(t *testing.T) {
	opts := diffusion.DefaultOptions()
	opts.Stencil = diffusion.Stencil(99)
	_, err := diffusion.NewKernel(opts)
	assert.ErrorIs(t, err, diffusion.ErrUnknownStencil, "out-of-range stencil must error")

	opts = diffusion.DefaultOptions()
	opts.Passes = 0
	_, err = diffusion.NewKernel(opts)
	assert.ErrorIs(t, err, diffusion.ErrBadPasses, "zero passes must error")
}

// TestApply2_ShapeErrors verifies shape validation before any write.
func TestApply2_ShapeErrors(t *testing.T) {
	k := newKernel(t, diffusion.D22)
	x := grid.New2(3, 4)
	y := grid.New2(4, 3)
	assert.ErrorIs(t, k.Apply2(nil, 1, nil, x, y), grid.ErrShapeMismatch,
		"mismatched x and y shapes must error")
	s := grid.New2(3, 3)
	assert.ErrorIs(t, k.Apply2(nil, 1, s, x, grid.Like2(x)), grid.ErrShapeMismatch,
		"mismatched scale shape must error")
}

// TestApply3_Unsupported verifies that stencils without a 3D form
// reject rank-3 input without touching the output.
func TestApply3_Unsupported(t *testing.T) {
	for _, s := range []diffusion.Stencil{diffusion.D24, diffusion.D91} {
		k := newKernel(t, s)
		x := grid.New3(4, 4, 4)
		y := grid.New3(4, 4, 4)
		err := k.Apply3(nil, 1, nil, x, y)
		assert.ErrorIs(t, err, diffusion.ErrUnsupportedStencil, "%v has no 3D form", s)
		assert.False(t, s.Has3D(), "%v must report no 3D form", s)
	}
}

// TestApply2_ZeroScale verifies that c=0 leaves the accumulator intact.
func TestApply2_ZeroScale(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x := randArr2(rng, 9, 8)
	d := randEigen2(rng, 9, 8)
	for _, s := range stencils2 {
		y := randArr2(rng, 9, 8)
		want := grid.Clone2(y)
		require.NoError(t, newKernel(t, s).Apply2(d, 0, nil, x, y))
		for i2 := range y {
			for i1 := range y[i2] {
				assert.InDelta(t, want[i2][i1], y[i2][i1], 0,
					"%v with c=0 must not change y at (%d,%d)", s, i1, i2)
			}
		}
	}
}

// TestApply2_AnnihilatesConstants verifies G'DG·const = 0 for every
// stencil, which exercises every clamped boundary tap: differences of a
// constant vanish even where indices are replicated at the edges.
func TestApply2_AnnihilatesConstants(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := grid.New2(11, 7)
	grid.Fill2(3.25, x)
	d := randEigen2(rng, 11, 7)
	for _, s := range stencils2 {
		y := grid.New2(11, 7)
		require.NoError(t, newKernel(t, s).Apply2(d, 1.5, nil, x, y))
		for i2 := range y {
			for i1 := range y[i2] {
				assert.InDelta(t, 0, y[i2][i1], 1e-12,
					"%v must annihilate constants at (%d,%d)", s, i1, i2)
			}
		}
	}
}

// TestApply3_AnnihilatesConstants is the rank-3 form of the constant
// annihilation law.
func TestApply3_AnnihilatesConstants(t *testing.T) {
	x := grid.New3(6, 5, 7)
	grid.Fill3(-1.75, x)
	for _, s := range stencils3 {
		y := grid.New3(6, 5, 7)
		require.NoError(t, newKernel(t, s).Apply3(nil, 2.0, nil, x, y))
		for i3 := range y {
			for i2 := range y[i3] {
				for i1 := range y[i3][i2] {
					assert.InDelta(t, 0, y[i3][i2][i1], 1e-12,
						"%v must annihilate constants at (%d,%d,%d)", s, i1, i2, i3)
				}
			}
		}
	}
}

// TestApply2_SelfAdjoint verifies ⟨z,Gx⟩ = ⟨x,Gz⟩ for every stencil
// with random tensors and scale factors; G'DG is symmetric by
// construction and the fused gather/scatter loops must preserve that.
func TestApply2_SelfAdjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n1, n2 = 10, 9
	x := randArr2(rng, n1, n2)
	z := randArr2(rng, n1, n2)
	d := randEigen2(rng, n1, n2)
	s := grid.New2(n1, n2)
	for i2 := range s {
		for i1 := range s[i2] {
			s[i2][i1] = 0.5 + rng.Float64()
		}
	}
	for _, st := range stencils2 {
		k := newKernel(t, st)
		gx := grid.New2(n1, n2)
		gz := grid.New2(n1, n2)
		require.NoError(t, k.Apply2(d, 0.8, s, x, gx))
		require.NoError(t, k.Apply2(d, 0.8, s, z, gz))
		assert.InDelta(t, grid.Dot2(z, gx), grid.Dot2(x, gz), 1e-9,
			"%v must be self-adjoint", st)
	}
}

// TestApply3_SelfAdjoint is the rank-3 adjointness check, run with the
// parallel sweeps enabled.
func TestApply3_SelfAdjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	const n1, n2, n3 = 8, 7, 9
	x := randArr3(rng, n1, n2, n3)
	z := randArr3(rng, n1, n2, n3)
	for _, st := range stencils3 {
		k := newKernel(t, st)
		gx := grid.New3(n1, n2, n3)
		gz := grid.New3(n1, n2, n3)
		require.NoError(t, k.Apply3(nil, 1.2, nil, x, gx))
		require.NoError(t, k.Apply3(nil, 1.2, nil, z, gz))
		assert.InDelta(t, grid.Dot3(z, gx), grid.Dot3(x, gz), 1e-9,
			"%v must be self-adjoint in 3D", st)
	}
}

// TestApply2_NonNegative verifies x'(G'DG)x ≥ 0 with positive-definite
// tensors, the semidefiniteness that keeps I+c·G'DG solvable by CG.
func TestApply2_NonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const n1, n2 = 12, 10
	d := randEigen2(rng, n1, n2)
	for _, st := range stencils2 {
		k := newKernel(t, st)
		for trial := 0; trial < 5; trial++ {
			x := randArr2(rng, n1, n2)
			gx := grid.New2(n1, n2)
			require.NoError(t, k.Apply2(d, 1.0, nil, x, gx))
			assert.GreaterOrEqual(t, grid.Dot2(x, gx), -1e-9,
				"%v quadratic form must be non-negative", st)
		}
	}
}

// TestApply2_D22Golden checks the hand-computed response of the default
// stencil on a 2×2 corner impulse: the lone gradient cell couples the
// two main-diagonal samples with weight 1/2.
func TestApply2_D22Golden(t *testing.T) {
	k := newKernel(t, diffusion.D22)
	x := [][]float64{{0, 0}, {0, 1}}
	y := grid.New2(2, 2)
	require.NoError(t, k.Apply2(nil, 1.0, nil, x, y))
	assert.InDelta(t, -0.5, y[0][0], 1e-12, "y[0][0]")
	assert.InDelta(t, 0.0, y[0][1], 1e-12, "y[0][1]")
	assert.InDelta(t, 0.0, y[1][0], 1e-12, "y[1][0]")
	assert.InDelta(t, 0.5, y[1][1], 1e-12, "y[1][1]")
}

// TestApply2_D71EdgeGolden pins the replicated-edge clamp arithmetic of
// the rolling 7×1 rings against literal output values. An impulse at a
// corner puts every tap of both rings into its clamped regime; the
// expected numbers were computed once from the tap table
// {0.830893, -0.227266, 0.042877} and the clamped index sequences.
func TestApply2_D71EdgeGolden(t *testing.T) {
	// Edge response of the 1D gather/scatter pair, left to right from
	// the impulse sample.
	edge := []float64{
		0.8717725844820001,
		-0.700127661731,
		-0.354621070847,
		0.272415755433,
		-0.089439607337,
	}

	k := newKernel(t, diffusion.D71)

	// Single row: the axis-2 rings all clamp to row 0, so only the
	// axis-1 gradient contributes.
	x := [][]float64{{1, 0, 0, 0, 0}}
	y := grid.New2(5, 1)
	require.NoError(t, k.Apply2(nil, 1.0, nil, x, y))
	for i1, want := range edge {
		assert.InDelta(t, want, y[0][i1], 1e-12, "row response at %d", i1)
	}

	// Corner impulse on a 5×5 plane: with identity tensors the two axes
	// decouple, so the response is the edge profile along the first row
	// and first column, doubled where they meet at the corner.
	x = grid.New2(5, 5)
	x[0][0] = 1.0
	y = grid.New2(5, 5)
	require.NoError(t, k.Apply2(nil, 1.0, nil, x, y))
	for i, want := range edge {
		if i == 0 {
			want *= 2
		}
		assert.InDelta(t, want, y[0][i], 1e-12, "first row at %d", i)
		assert.InDelta(t, want, y[i][0], 1e-12, "first column at %d", i)
	}
	for i2 := 1; i2 < 5; i2++ {
		for i1 := 1; i1 < 5; i1++ {
			assert.InDelta(t, 0.0, y[i2][i1], 1e-12, "interior at (%d,%d)", i1, i2)
		}
	}
}

// TestApply2_D22ImpulseSymmetry verifies the isotropic impulse response
// is symmetric about the center and under transposition.
func TestApply2_D22ImpulseSymmetry(t *testing.T) {
	const n = 7
	k := newKernel(t, diffusion.D22)
	x := grid.New2(n, n)
	x[n/2][n/2] = 1.0
	y := grid.New2(n, n)
	require.NoError(t, k.Apply2(nil, 1.0, nil, x, y))
	for i2 := 0; i2 < n; i2++ {
		for i1 := 0; i1 < n; i1++ {
			assert.InDelta(t, y[i2][i1], y[n-1-i2][n-1-i1], 1e-12,
				"point symmetry at (%d,%d)", i1, i2)
			assert.InDelta(t, y[i2][i1], y[i1][i2], 1e-12,
				"transpose symmetry at (%d,%d)", i1, i2)
		}
	}
}

// TestApply2_MultiPass verifies that a two-pass kernel equals applying
// the one-pass operator y += Gx twice, re-reading its own output.
func TestApply2_MultiPass(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	const n1, n2 = 9, 8
	x := randArr2(rng, n1, n2)
	d := randEigen2(rng, n1, n2)

	opts := diffusion.DefaultOptions()
	opts.Stencil = diffusion.D71
	opts.Passes = 2
	k2, err := diffusion.NewKernel(opts)
	require.NoError(t, err)
	got := grid.New2(n1, n2)
	require.NoError(t, k2.Apply2(d, 0.5, nil, x, got))

	k1 := newKernel(t, diffusion.D71)
	a := grid.New2(n1, n2)
	require.NoError(t, k1.Apply2(d, 0.5, nil, x, a))
	want := grid.Clone2(a)
	require.NoError(t, k1.Apply2(d, 0.5, nil, a, want))

	for i2 := range want {
		for i1 := range want[i2] {
			assert.InDelta(t, want[i2][i1], got[i2][i1], 1e-12,
				"two passes must equal repeated application at (%d,%d)", i1, i2)
		}
	}
}

// TestApply3_ParallelMatchesSerial verifies the sweep-partitioned
// parallel path produces the serial result up to rounding.
func TestApply3_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n1, n2, n3 = 7, 6, 13
	x := randArr3(rng, n1, n2, n3)
	for _, st := range stencils3 {
		opts := diffusion.DefaultOptions()
		opts.Stencil = st
		opts.Parallel = true
		kp, err := diffusion.NewKernel(opts)
		require.NoError(t, err)
		opts.Parallel = false
		ks, err := diffusion.NewKernel(opts)
		require.NoError(t, err)

		yp := grid.New3(n1, n2, n3)
		ys := grid.New3(n1, n2, n3)
		require.NoError(t, kp.Apply3(nil, 1.0, nil, x, yp))
		require.NoError(t, ks.Apply3(nil, 1.0, nil, x, ys))
		for i3 := range ys {
			for i2 := range ys[i3] {
				for i1 := range ys[i3][i2] {
					assert.InDelta(t, ys[i3][i2][i1], yp[i3][i2][i1], 1e-12,
						"%v parallel result at (%d,%d,%d)", st, i1, i2, i3)
				}
			}
		}
	}
}

// TestStencil_Metadata spot-checks tap counts and names.
func TestStencil_Metadata(t *testing.T) {
	assert.Equal(t, "D22", diffusion.D22.String())
	assert.Equal(t, "D71", diffusion.D71.String())
	assert.Equal(t, 4, diffusion.D22.Taps2(), "D22 2D taps")
	assert.Equal(t, 8, diffusion.D22.Taps3(), "D22 3D taps")
	assert.Equal(t, 6, diffusion.D71.Taps2(), "D71 2D taps")
	assert.True(t, diffusion.D22.Has3D())
	assert.False(t, diffusion.D91.Has3D())
	assert.False(t, diffusion.D21.TensorAware(), "D21 is isotropic only")
	assert.True(t, diffusion.D33.TensorAware())
}
