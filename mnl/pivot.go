// SPDX-License-Identifier: MIT

package mnl

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvchoice/field"
)

// PivotPoint reweights base probabilities by the change in utility between
// a base and an updated scenario.
//
//	w[k]  = Po[k] · exp(U[k] − Ubase[k])
//	P[k]  = w[k] / Σ_j w[j]     (Σ w == 0 → DegenerateTotal)
//
// With U == Ubase the result is Po renormalized to sum to 1. Probability
// mass in Po for an alternative whose U is undefined (NaN) propagates as
// NaN; keeping the inputs consistent is the caller's job.
//
// The three mappings must carry the same alternatives and one common shape.
//
// Complexity: O(K·U).
//
// Errors:
//   - ErrNoAlternatives: updated is empty.
//   - ErrMissingAlternative: key sets differ.
//   - field.ErrNilField / field.ErrShapeMismatch.
func PivotPoint(base, updated, baseProb map[string]*field.Field) (map[string]*field.Field, error) {
	if len(updated) == 0 {
		return nil, ErrNoAlternatives
	}
	if len(base) != len(updated) || len(baseProb) != len(updated) {
		return nil, fmt.Errorf("%d updated, %d base, %d base-probability alternatives: %w",
			len(updated), len(base), len(baseProb), ErrMissingAlternative)
	}
	shape, err := field.CommonShape(updated)
	if err != nil {
		return nil, err
	}

	keys := field.SortedKeys(updated)
	for _, k := range keys {
		if _, ok := base[k]; !ok {
			return nil, fmt.Errorf("base utilities %q: %w", k, ErrMissingAlternative)
		}
		if _, ok := baseProb[k]; !ok {
			return nil, fmt.Errorf("base probabilities %q: %w", k, ErrMissingAlternative)
		}
		if err = field.Expect("base utilities "+k, base[k], shape); err != nil {
			return nil, err
		}
		if err = field.Expect("base probabilities "+k, baseProb[k], shape); err != nil {
			return nil, err
		}
	}

	size := shape.Size()
	weights := make(map[string][]float64, len(keys))
	total := make([]float64, size)
	for _, k := range keys {
		u, ub, po := updated[k].Raw(), base[k].Raw(), baseProb[k].Raw()
		w := make([]float64, size)
		for i := range w {
			w[i] = po[i] * math.Exp(u[i]-ub[i])
		}
		floats.Add(total, w)
		weights[k] = w
	}
	guardZero(total, DegenerateTotal)

	out := make(map[string]*field.Field, len(keys))
	for _, k := range keys {
		w := weights[k]
		floats.Div(w, total)
		if out[k], err = field.Wrap(shape, w); err != nil {
			return nil, err
		}
	}

	return out, nil
}
