package nested_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvchoice/field"
	"github.com/katalvlaran/lvchoice/nested"
)

// benchmarkEvaluate runs the three-level tree over an n×n zone system.
func benchmarkEvaluate(b *testing.B, n, workers int) {
	tree, err := nested.NewTree(
		nested.Node{Level: 0, Code: nested.RootCode, Scale: 1.0, Children: []string{"AU", "TR", "AC"}},
		nested.Node{Level: 1, Code: "AU", Scale: 0.8, Children: []string{"CD", "CP"}},
		nested.Node{Level: 1, Code: "TR", Scale: 0.6, Children: []string{"TB", "RAIL"}},
		nested.Node{Level: 1, Code: "AC", Scale: 0.9, Children: []string{"BK", "WK"}},
		nested.Node{Level: 2, Code: "RAIL", Scale: 0.5, Children: []string{"LR", "CR"}},
	)
	if err != nil {
		b.Fatalf("NewTree failed: %v", err)
	}
	leaves := make(map[string]*field.Field)
	for li, code := range tree.Leaves() {
		f, _ := field.New(field.Square(n))
		raw := f.Raw()
		for i := range raw {
			raw[i] = float64((i+li*5)%17)/8 - 1 // deterministic utilities in [-1, 1]
		}
		leaves[code] = f
	}
	opts := nested.Options{Workers: workers}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nested.Evaluate(context.Background(), tree, leaves, field.Square(n), &opts); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_300Sequential benchmarks one worker on 300 zones.
func BenchmarkEvaluate_300Sequential(b *testing.B) { benchmarkEvaluate(b, 300, 1) }

// BenchmarkEvaluate_300Parallel benchmarks four workers on 300 zones.
func BenchmarkEvaluate_300Parallel(b *testing.B) { benchmarkEvaluate(b, 300, 4) }
