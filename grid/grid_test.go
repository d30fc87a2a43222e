package grid_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsmooth/grid"
)

// TestNew_Shapes verifies allocation shapes with the fastest dimension
// innermost.
func TestNew_Shapes(t *testing.T) {
	x := grid.New2(3, 5)
	require.Len(t, x, 5, "New2 outer length must be n2")
	for _, row := range x {
		assert.Len(t, row, 3, "New2 inner length must be n1")
	}

	y := grid.New3(2, 3, 4)
	require.Len(t, y, 4, "New3 outer length must be n3")
	require.Len(t, y[0], 3, "New3 middle length must be n2")
	assert.Len(t, y[0][0], 2, "New3 inner length must be n1")
}

// TestCheck_Errors verifies rejection of empty and ragged arrays.
func TestCheck_Errors(t *testing.T) {
	assert.ErrorIs(t, grid.Check2([][]float64{}), grid.ErrEmptyGrid,
		"no rows should error")
	assert.ErrorIs(t, grid.Check2([][]float64{{}}), grid.ErrEmptyGrid,
		"empty rows should error")
	assert.ErrorIs(t, grid.Check2([][]float64{{1, 2}, {3}}), grid.ErrNonRectangular,
		"ragged rows should error")
	assert.NoError(t, grid.Check2([][]float64{{1, 2}, {3, 4}}),
		"rectangular array must pass")

	assert.ErrorIs(t, grid.Check3([][][]float64{}), grid.ErrEmptyGrid,
		"no planes should error")
	assert.ErrorIs(t, grid.Check3([][][]float64{{}}), grid.ErrEmptyGrid,
		"empty planes should error")
	assert.ErrorIs(t, grid.Check3([][][]float64{{{1}}, {{1, 2}}}), grid.ErrNonRectangular,
		"ragged planes should error")

	// Each plane rectangular on its own, row lengths differing across
	// planes. Must still be rejected: stencil loops index every plane
	// with the first plane's row length.
	ragged := [][][]float64{
		{{1, 2}, {3, 4}},
		{{1, 2, 3}, {4, 5, 6}},
	}
	assert.ErrorIs(t, grid.Check3(ragged), grid.ErrNonRectangular,
		"planes with different row lengths should error")
	assert.ErrorIs(t, grid.Same3(ragged, ragged), grid.ErrNonRectangular,
		"Same3 must reject cross-plane raggedness")
	assert.NoError(t, grid.Check3(grid.New3(2, 3, 4)),
		"rectangular volume must pass")
}

// TestSame_ShapeMismatch verifies shape comparison of two arrays.
func TestSame_ShapeMismatch(t *testing.T) {
	a := grid.New2(3, 4)
	b := grid.New2(3, 4)
	c := grid.New2(4, 3)
	assert.NoError(t, grid.Same2(a, b), "equal shapes must pass")
	assert.ErrorIs(t, grid.Same2(a, c), grid.ErrShapeMismatch,
		"different shapes should error")
}

// TestCloneAndFill verifies deep copy independence and constant fill.
func TestCloneAndFill(t *testing.T) {
	x := grid.New2(2, 2)
	grid.Fill2(3.5, x)
	y := grid.Clone2(x)
	y[1][1] = -1.0
	assert.Equal(t, 3.5, x[1][1], "Clone2 must not share storage")

	z := grid.New3(2, 2, 2)
	grid.Fill3(1.25, z)
	w := grid.Clone3(z)
	w[0][0][0] = 9.0
	assert.Equal(t, 1.25, z[0][0][0], "Clone3 must not share storage")
}

// TestVecOps verifies the dot/axpy/xpay identities used by the solvers.
func TestVecOps(t *testing.T) {
	x := [][]float64{{1, 2}, {3, 4}}
	y := [][]float64{{5, 6}, {7, 8}}

	assert.Equal(t, 70.0, grid.Dot2(x, y), "Dot2(x,y) = 5+12+21+32")

	a := grid.Clone2(y)
	grid.Axpy2(2.0, x, a)
	assert.Equal(t, [][]float64{{7, 10}, {13, 16}}, a, "Axpy2 computes y+2x")

	b := grid.Clone2(y)
	grid.Xpay2(2.0, x, b)
	assert.Equal(t, [][]float64{{11, 14}, {17, 20}}, b, "Xpay2 computes x+2y")

	m := grid.Like2(x)
	grid.Mul2(x, y, m)
	assert.Equal(t, [][]float64{{5, 12}, {21, 32}}, m, "Mul2 is elementwise")

	assert.InDelta(t, 5.477225575, grid.Norm2(x), 1e-9, "Norm2 is sqrt(30)")
}

// TestVecOps3 cross-checks the rank-3 reductions against rank-2 ones.
func TestVecOps3(t *testing.T) {
	x := grid.New3(3, 4, 5)
	y := grid.New3(3, 4, 5)
	v := 0.0
	for i3 := range x {
		for i2 := range x[i3] {
			for i1 := range x[i3][i2] {
				v++
				x[i3][i2][i1] = v
				y[i3][i2][i1] = 60 - v
			}
		}
	}
	want := 0.0
	for i3 := range x {
		want += grid.Dot2(x[i3], y[i3])
	}
	assert.InDelta(t, want, grid.Dot3(x, y), 1e-9,
		"Dot3 must equal the sum of per-plane Dot2")
}

// TestLoop_VisitsEachIndexOnce verifies the parallel index loop visits
// exactly the arithmetic progression start, start+stride, …
func TestLoop_VisitsEachIndexOnce(t *testing.T) {
	const n = 103
	var visits [n]int32
	grid.Loop(2, n, 3, func(i int) {
		atomic.AddInt32(&visits[i], 1)
	})
	for i := 0; i < n; i++ {
		want := int32(0)
		if i >= 2 && (i-2)%3 == 0 {
			want = 1
		}
		assert.Equal(t, want, visits[i], "index %d visit count", i)
	}
}

// TestLoop_EmptyAndDegenerate verifies no calls for empty ranges.
func TestLoop_EmptyAndDegenerate(t *testing.T) {
	calls := 0
	grid.Loop(5, 5, 1, func(int) { calls++ })
	grid.Loop(7, 3, 1, func(int) { calls++ })
	grid.Loop(0, 4, 0, func(int) { calls++ })
	assert.Zero(t, calls, "degenerate ranges must not invoke fn")
}
