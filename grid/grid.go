package grid

// New2 allocates a zeroed rank-2 array with n1 samples in the fast
// dimension and n2 rows: x[i2][i1].
// Complexity: O(n1·n2) time and memory.
func New2(n1, n2 int) [][]float64 {
	x := make([][]float64, n2)
	for i2 := range x {
		x[i2] = make([]float64, n1)
	}
	return x
}

// New3 allocates a zeroed rank-3 array: x[i3][i2][i1].
// Complexity: O(n1·n2·n3) time and memory.
func New3(n1, n2, n3 int) [][][]float64 {
	x := make([][][]float64, n3)
	for i3 := range x {
		x[i3] = New2(n1, n2)
	}
	return x
}

// Like2 allocates a zeroed rank-2 array with the same shape as x.
func Like2(x [][]float64) [][]float64 {
	y := make([][]float64, len(x))
	for i2 := range x {
		y[i2] = make([]float64, len(x[i2]))
	}
	return y
}

// Like3 allocates a zeroed rank-3 array with the same shape as x.
func Like3(x [][][]float64) [][][]float64 {
	y := make([][][]float64, len(x))
	for i3 := range x {
		y[i3] = Like2(x[i3])
	}
	return y
}

// Check2 validates that x is non-empty and rectangular.
// Returns ErrEmptyGrid or ErrNonRectangular on failure.
// Complexity: O(n2).
func Check2(x [][]float64) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return ErrEmptyGrid
	}
	n1 := len(x[0])
	for _, row := range x {
		if len(row) != n1 {
			return ErrNonRectangular
		}
	}
	return nil
}

// Check3 validates that x is non-empty and rectangular in all dimensions.
// Returns ErrEmptyGrid or ErrNonRectangular on failure.
// Complexity: O(n2·n3).
func Check3(x [][][]float64) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return ErrEmptyGrid
	}
	n2 := len(x[0])
	n1 := len(x[0][0])
	for _, plane := range x {
		if len(plane) != n2 {
			return ErrNonRectangular
		}
		if err := Check2(plane); err != nil {
			return err
		}
		if len(plane[0]) != n1 {
			return ErrNonRectangular
		}
	}
	return nil
}

// Same2 validates that x and y are rectangular and share one shape.
// Returns ErrShapeMismatch when shapes differ.
func Same2(x, y [][]float64) error {
	if err := Check2(x); err != nil {
		return err
	}
	if err := Check2(y); err != nil {
		return err
	}
	if len(x) != len(y) || len(x[0]) != len(y[0]) {
		return ErrShapeMismatch
	}
	return nil
}

// Same3 validates that x and y are rectangular and share one shape.
// Returns ErrShapeMismatch when shapes differ.
func Same3(x, y [][][]float64) error {
	if err := Check3(x); err != nil {
		return err
	}
	if err := Check3(y); err != nil {
		return err
	}
	if len(x) != len(y) || len(x[0]) != len(y[0]) ||
		len(x[0][0]) != len(y[0][0]) {
		return ErrShapeMismatch
	}
	return nil
}

// Copy1 copies src into dst.
func Copy1(src, dst []float64) {
	copy(dst, src)
}

// Copy2 copies src into dst row by row. Shapes must already match.
func Copy2(src, dst [][]float64) {
	for i2 := range src {
		copy(dst[i2], src[i2])
	}
}

// Copy3 copies src into dst, fanning rows of the outer dimension out
// across workers. Shapes must already match.
func Copy3(src, dst [][][]float64) {
	Loop(0, len(src), 1, func(i3 int) {
		Copy2(src[i3], dst[i3])
	})
}

// Clone2 returns a deep copy of x.
func Clone2(x [][]float64) [][]float64 {
	y := Like2(x)
	Copy2(x, y)
	return y
}

// Clone3 returns a deep copy of x.
func Clone3(x [][][]float64) [][][]float64 {
	y := Like3(x)
	Copy3(x, y)
	return y
}

// Zero2 sets every sample of x to zero.
func Zero2(x [][]float64) {
	for i2 := range x {
		row := x[i2]
		for i1 := range row {
			row[i1] = 0
		}
	}
}

// Zero3 sets every sample of x to zero, in parallel over the outer
// dimension.
func Zero3(x [][][]float64) {
	Loop(0, len(x), 1, func(i3 int) {
		Zero2(x[i3])
	})
}

// Fill2 sets every sample of x to v.
func Fill2(v float64, x [][]float64) {
	for i2 := range x {
		row := x[i2]
		for i1 := range row {
			row[i1] = v
		}
	}
}

// Fill3 sets every sample of x to v.
func Fill3(v float64, x [][][]float64) {
	Loop(0, len(x), 1, func(i3 int) {
		Fill2(v, x[i3])
	})
}
