package lowpass_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsmooth/lowpass"
)

// ExampleDesign builds a filter for a 0.35 cycles/sample cutoff; the
// 0.15 transition width at 1% ripple calls for 15 taps per axis.
func ExampleDesign() {
	f, err := lowpass.Design(0.35)
	if err != nil {
		panic(err)
	}
	fmt.Printf("kmax=%.2f taps=%d\n", f.Kmax(), f.Length())
	// Output:
	// kmax=0.35 taps=15
}
