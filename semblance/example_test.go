package semblance_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsmooth/semblance"
)

// ExampleFilter_Semblance1 computes semblance of a perfectly coherent
// 1D signal. With zero half-widths both smoothings are identities and
// the squared-smoothed over smoothed-squared ratio is exactly one.
func ExampleFilter_Semblance1() {
	f, err := semblance.New(0, 0)
	if err != nil {
		panic(err)
	}
	x := []float64{2, 2, 2, 2, 2}
	s := make([]float64, len(x))
	if err := f.Semblance1(x, s); err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n", s[0], s[2], s[4])
	// Output:
	// 1.00 1.00 1.00
}
