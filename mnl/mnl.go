// SPDX-License-Identifier: MIT

package mnl

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvchoice/field"
)

// Multinomial computes multinomial-logit probabilities for every alternative.
//
// Algorithm Outline:
//  1. Validate: at least one alternative, all non-nil with one shape.
//  2. For each alternative (sorted by name): e[k] = exp(U[k]); total += e[k].
//  3. If opts.Logsum: logsum = ln(total), before step 4.
//  4. Where total == 0 exactly, total = DegenerateTotal.
//  5. P[k] = e[k] / total.
//
// Alternatives are summed in sorted-name order so results are reproducible
// bit for bit.
//
// Complexity: O(K·U) time and memory.
//
// Errors:
//   - ErrNoAlternatives: utils is empty.
//   - field.ErrNilField: an entry is nil.
//   - field.ErrShapeMismatch: entries differ in shape.
func Multinomial(utils map[string]*field.Field, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(utils) == 0 {
		return Result{}, ErrNoAlternatives
	}
	shape, err := field.CommonShape(utils)
	if err != nil {
		return Result{}, err
	}

	keys := field.SortedKeys(utils)
	size := shape.Size()

	var shift []float64
	if o.Stabilize {
		shift = unitMax(utils, keys, size)
	}

	eU := make(map[string][]float64, len(keys))
	total := make([]float64, size)
	for _, k := range keys {
		e := expShifted(utils[k].Raw(), shift)
		floats.Add(total, e)
		eU[k] = e
	}

	var res Result
	if o.Logsum {
		ls := make([]float64, size)
		for i, t := range total {
			ls[i] = math.Log(t)
			if shift != nil {
				ls[i] += shift[i]
			}
		}
		if res.Logsum, err = field.Wrap(shape, ls); err != nil {
			return Result{}, err
		}
	}

	guardZero(total, DegenerateTotal)

	res.Probabilities = make(map[string]*field.Field, len(keys))
	for _, k := range keys {
		p := eU[k]
		floats.Div(p, total)
		if res.Probabilities[k], err = field.Wrap(shape, p); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// expShifted returns exp(u[i] - shift[i]); a nil shift means no shift.
func expShifted(u, shift []float64) []float64 {
	out := make([]float64, len(u))
	if shift == nil {
		for i, v := range u {
			out[i] = math.Exp(v)
		}

		return out
	}
	for i, v := range u {
		out[i] = math.Exp(v - shift[i])
	}

	return out
}

// unitMax returns the largest utility at each unit. Infinite maxima are
// replaced by 0 so that U - max never evaluates Inf - Inf.
func unitMax(utils map[string]*field.Field, keys []string, size int) []float64 {
	mx := make([]float64, size)
	for i := range mx {
		mx[i] = math.Inf(-1)
	}
	for _, k := range keys {
		for i, v := range utils[k].Raw() {
			if v > mx[i] {
				mx[i] = v
			}
		}
	}
	for i, v := range mx {
		if math.IsInf(v, 0) {
			mx[i] = 0
		}
	}

	return mx
}

// guardZero replaces exact zeros in total with eps.
func guardZero(total []float64, eps float64) {
	for i, t := range total {
		if t == 0 {
			total[i] = eps
		}
	}
}
