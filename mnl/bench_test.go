package mnl_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvchoice/field"
	"github.com/katalvlaran/lvchoice/mnl"
)

// benchmarkMultinomial runs Multinomial over k alternatives on an n×n zone system.
func benchmarkMultinomial(b *testing.B, k, n int, opts mnl.Options) {
	utils := make(map[string]*field.Field, k)
	for a := 0; a < k; a++ {
		f, err := field.New(field.Square(n))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		raw := f.Raw()
		for i := range raw {
			raw[i] = float64((i*7+a*13)%23) / 10 // deterministic spread of utilities
		}
		utils[fmt.Sprintf("alt%d", a)] = f
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mnl.Multinomial(utils, &opts); err != nil {
			b.Fatalf("Multinomial failed: %v", err)
		}
	}
}

// BenchmarkMultinomial_3x500 benchmarks three modes over 500 zones.
func BenchmarkMultinomial_3x500(b *testing.B) {
	benchmarkMultinomial(b, 3, 500, mnl.DefaultOptions())
}

// BenchmarkMultinomial_3x500Stable adds the per-unit max shift.
func BenchmarkMultinomial_3x500Stable(b *testing.B) {
	benchmarkMultinomial(b, 3, 500, mnl.Options{Logsum: true, Stabilize: true})
}
