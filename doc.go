// Package lvchoice is an in-memory engine for discrete-choice probabilities:
// given utilities per alternative per decision unit, it tells you which
// share of travellers picks each alternative.
//
// 🚀 What is lvchoice?
//
//	A small, deterministic, pure-Go library that brings together:
//		• UtilityFields: vectors or square OD matrices behind one flat layout
//		• Multinomial logit: probabilities + logsum accessibility
//		• Pivot-point logit: base shares reweighted by a utility change
//		• Nested logit: arbitrary-depth trees, level-parallel evaluation
//		• Raw I/O: headerless float64 dumps in and out
//
// ✨ Why choose lvchoice?
//
//   - Inputs are never written: share trees and utilities across goroutines
//   - Validated trees: duplicate codes, broken levels and orphans rejected up front
//   - Exact bookkeeping: a nest's children always add up to the nest
//   - Sentinel errors: match every failure with errors.Is
//
// Under the hood, everything is organized under these subpackages:
//
//	field/ : UtilityField and Shape
//	mnl/   : Multinomial and PivotPoint
//	nested/: Tree, NewTree and Evaluate
//	rawio/ : headerless array files
//
// Quick ASCII example:
//
//	        ROOT
//	       /    \
//	     AU      TR (θ=0.7)
//	            /  \
//	          WB    WX
//
//	auto against a transit nest of walk-bus and walk-express.
//
// The lvchoice command (cmd/lvchoice) wires the packages to files:
//
//	go install github.com/katalvlaran/lvchoice/cmd/lvchoice@latest
//	lvchoice nested --config run.yaml
package lvchoice
