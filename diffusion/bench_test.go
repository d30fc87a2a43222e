package diffusion_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsmooth/diffusion"
	"github.com/katalvlaran/lvlsmooth/grid"
)

// benchApply2 measures one 2D kernel pass on a 256×256 grid.
func benchApply2(b *testing.B, s diffusion.Stencil) {
	rng := rand.New(rand.NewSource(42))
	const n = 256
	x := randArr2(rng, n, n)
	y := grid.New2(n, n)
	d := randEigen2(rng, n, n)
	opts := diffusion.DefaultOptions()
	opts.Stencil = s
	k, err := diffusion.NewKernel(opts)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := k.Apply2(d, 1.0, nil, x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApply2_D22(b *testing.B) { benchApply2(b, diffusion.D22) }
func BenchmarkApply2_D33(b *testing.B) { benchApply2(b, diffusion.D33) }
func BenchmarkApply2_D71(b *testing.B) { benchApply2(b, diffusion.D71) }
func BenchmarkApply2_D91(b *testing.B) { benchApply2(b, diffusion.D91) }

// benchApply3 measures one 3D kernel pass on a 64³ volume, with and
// without the parallel sweeps.
func benchApply3(b *testing.B, parallel bool) {
	rng := rand.New(rand.NewSource(42))
	const n = 64
	x := randArr3(rng, n, n, n)
	y := grid.New3(n, n, n)
	opts := diffusion.DefaultOptions()
	opts.Parallel = parallel
	k, err := diffusion.NewKernel(opts)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := k.Apply3(nil, 1.0, nil, x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApply3_Serial(b *testing.B)   { benchApply3(b, false) }
func BenchmarkApply3_Parallel(b *testing.B) { benchApply3(b, true) }
