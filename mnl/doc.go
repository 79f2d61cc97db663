// SPDX-License-Identifier: MIT

// Package mnl evaluates flat multinomial-logit and pivot-point logit choice
// probabilities over UtilityFields.
//
// 🚀 What is a multinomial logit?
//
//	Each alternative k carries a utility U[k] per decision unit. The share
//	of units choosing k is
//
//	  P[k] = exp(U[k]) / Σ_j exp(U[j])
//
//	and ln Σ_j exp(U[j]) (the logsum) is the composite utility of the whole
//	choice set, used as an accessibility measure.
//
// ✨ Evaluators:
//   - Multinomial: probabilities and, on request, the logsum
//   - PivotPoint: reweights known base probabilities by the change in
//     utility between a base and an updated scenario
//
// Degenerate units:
//
//	When every exp(U[k]) underflows to exactly 0 at a unit, the denominator
//	is replaced by DegenerateTotal (1e-4). The numerators stay 0, so those
//	units come back with all-zero probabilities rather than NaN; they are
//	NOT renormalized to 1. The logsum is taken before that substitution and
//	is -Inf there. Options.Stabilize shifts utilities by their per-unit
//	maximum first, which keeps such units well defined.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvchoice/mnl"
//
//	auto, _ := field.FromVector([]float64{1.0})
//	transit, _ := field.FromVector([]float64{0.0})
//	opts := mnl.DefaultOptions()
//	opts.Logsum = true
//	res, err := mnl.Multinomial(map[string]*field.Field{"auto": auto, "transit": transit}, &opts)
//
// Performance:
//
//   - Time:   O(K·U) for K alternatives and U units
//   - Memory: O(K·U) for the returned probabilities
//
// Inputs are never written; every call returns fresh Fields, so evaluators
// may run concurrently over shared inputs.
package mnl
