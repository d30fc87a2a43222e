package diffusion_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/grid"
)

// ExampleKernel_Apply2 applies the default stencil to a corner impulse.
// The single gradient cell of a 2×2 grid couples the two samples on the
// main diagonal.
func ExampleKernel_Apply2() {
	k, err := diffusion.NewKernel(diffusion.DefaultOptions())
	if err != nil {
		panic(err)
	}
	x := [][]float64{
		{0, 0},
		{0, 1},
	}
	y := grid.New2(2, 2)
	if err := k.Apply2(nil, 1.0, nil, x, y); err != nil {
		panic(err)
	}
	for _, row := range y {
		fmt.Printf("%.2f %.2f\n", row[0], row[1])
	}
	// Output:
	// -0.50 0.00
	// 0.00 0.50
}
