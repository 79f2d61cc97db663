// SPDX-License-Identifier: MIT

package nested

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvchoice/field"
)

// upward is what one nest contributes to the upward pass.
type upward struct {
	scaled    [][]float64 // children's utilities divided by the nest scale, in Children order
	composite []float64   // scale · logsum
}

// Evaluate computes nested-logit probabilities for every code of t.
//
// Algorithm Outline:
//  1. Validate: non-nil tree, valid shape, every leaf present in leaves with
//     that shape.
//  2. Upward pass, levels deepest → 0, codes ascending within a level. For
//     nest n with scale θ:
//     s[c]     = U[c] / θ                  for each child c
//     sumExp   = Σ_c exp(s[c])
//     logSum   = ln(max(sumExp, LogsumFloor)), NoViableLogsum where sumExp == 0
//     U[n]     = θ · logSum
//  3. Downward pass, levels 0 → deepest. P[ROOT] = 1. For nest n:
//     total    = Σ_c exp(s[c]), DegenerateTotal where total == 0
//     P[c]     = P[n] · exp(s[c]) / total   for all but the last child
//     P[last]  = P[n] · (1 − Σ earlier conditionals)
//
// Every level finishes before the next one starts. With opts.Workers > 1
// the nests of a level run concurrently on an errgroup; results are merged
// after Wait, so no nest ever observes a partial level. ctx is checked
// between levels.
//
// leaves is read only. Entries for nest codes are ignored.
//
// Utilities are exponentiated without a max shift. A scaled utility above
// roughly 709 overflows exp to +Inf, and every sibling in that nest (and
// below it) then comes back NaN. Keep U/θ within float64 range, or shift
// utilities per unit before calling.
//
// Complexity: O(V·U) time and memory for V codes and U units.
//
// Errors:
//   - ErrNilTree, field.ErrBadShape.
//   - ErrUnknownCode: a leaf has no entry in leaves.
//   - field.ErrNilField / field.ErrShapeMismatch: a leaf entry is unusable.
//   - ctx.Err(): cancelled between levels.
func Evaluate(ctx context.Context, t *Tree, leaves map[string]*field.Field, shape field.Shape, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if t == nil {
		return Result{}, ErrNilTree
	}
	if err := shape.Validate(); err != nil {
		return Result{}, err
	}

	// Stage 1: leaf lookup.
	values := make(map[string][]float64, len(t.nodes)+len(t.leaves))
	for _, code := range t.leaves {
		f, ok := leaves[code]
		if !ok {
			return Result{}, fmt.Errorf("leaf %q: %w", code, ErrUnknownCode)
		}
		if err := field.Expect(code, f, shape); err != nil {
			return Result{}, err
		}
		values[code] = f.Raw()
	}
	size := shape.Size()

	// Stage 2: upward pass.
	scaled := make(map[string][]float64, len(values))
	for l := len(t.levels) - 1; l >= 0; l-- {
		level := t.levels[l]
		ups := make([]upward, len(level))
		err := forLevel(ctx, level, o.Workers, func(i int, code string) {
			ups[i] = upNode(t.nodes[code], values, size)
		})
		if err != nil {
			return Result{}, err
		}
		for i, code := range level {
			n := t.nodes[code]
			for j, c := range n.Children {
				scaled[c] = ups[i].scaled[j]
			}
			values[code] = ups[i].composite
		}
	}

	// Stage 3: downward pass.
	probs := make(map[string][]float64, len(values))
	one := make([]float64, size)
	for i := range one {
		one[i] = 1
	}
	probs[RootCode] = one
	for l := 0; l < len(t.levels); l++ {
		level := t.levels[l]
		downs := make([][][]float64, len(level))
		err := forLevel(ctx, level, o.Workers, func(i int, code string) {
			downs[i] = downNode(t.nodes[code], scaled, probs[code], size)
		})
		if err != nil {
			return Result{}, err
		}
		for i, code := range level {
			for j, c := range t.nodes[code].Children {
				probs[c] = downs[i][j]
			}
		}
	}

	// Stage 4: package outputs.
	res := Result{
		Probabilities: make(map[string]*field.Field, len(probs)),
		Utilities:     make(map[string]*field.Field, len(probs)),
	}
	var err error
	for code, p := range probs {
		if res.Probabilities[code], err = field.Wrap(shape, p); err != nil {
			return Result{}, err
		}
	}
	for code, s := range scaled {
		if res.Utilities[code], err = field.Wrap(shape, s); err != nil {
			return Result{}, err
		}
	}
	if res.Utilities[RootCode], err = field.Wrap(shape, values[RootCode]); err != nil {
		return Result{}, err
	}
	if o.Logsum {
		res.Logsum = res.Utilities[RootCode].Clone()
	}

	return res, nil
}

// forLevel runs fn for every code of one level and returns once all are done.
func forLevel(ctx context.Context, level []string, workers int, fn func(i int, code string)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers <= 1 || len(level) == 1 {
		for i, code := range level {
			fn(i, code)
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, code := range level {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i, code)

			return nil
		})
	}

	return g.Wait()
}

// upNode computes one nest's scaled children and composite utility.
// values holds leaf utilities and composites of deeper nests; it is only read.
func upNode(n Node, values map[string][]float64, size int) upward {
	out := upward{
		scaled:    make([][]float64, len(n.Children)),
		composite: make([]float64, size),
	}
	sumExp := make([]float64, size)
	for j, c := range n.Children {
		src := values[c]
		s := make([]float64, size)
		for u, v := range src {
			s[u] = v / n.Scale
			sumExp[u] += math.Exp(s[u])
		}
		out.scaled[j] = s
	}
	for u, se := range sumExp {
		if se == 0 {
			out.composite[u] = n.Scale * NoViableLogsum
			continue
		}
		out.composite[u] = n.Scale * math.Log(math.Max(se, LogsumFloor))
	}

	return out
}

// downNode splits parent probability p between n's children. The last child
// takes the complement of the others' conditionals.
func downNode(n Node, scaled map[string][]float64, p []float64, size int) [][]float64 {
	k := len(n.Children)
	exps := make([][]float64, k)
	total := make([]float64, size)
	for j, c := range n.Children {
		e := make([]float64, size)
		for u, v := range scaled[c] {
			e[u] = math.Exp(v)
			total[u] += e[u]
		}
		exps[j] = e
	}
	for u, tot := range total {
		if tot == 0 {
			total[u] = DegenerateTotal
		}
	}

	out := make([][]float64, k)
	running := make([]float64, size)
	for j := 0; j < k-1; j++ {
		m := make([]float64, size)
		for u := range m {
			cond := exps[j][u] / total[u]
			m[u] = p[u] * cond
			running[u] += cond
		}
		out[j] = m
	}
	last := make([]float64, size)
	for u := range last {
		last[u] = p[u] * (1 - running[u])
	}
	out[k-1] = last

	return out
}
