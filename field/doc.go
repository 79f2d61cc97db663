// SPDX-License-Identifier: MIT

// Package field provides UtilityField, the numeric array every choice
// evaluation in lvchoice consumes and produces.
//
// 🚀 What is a UtilityField?
//
//	One float64 per decision unit. A unit is either a flat index (an OD pair
//	stored as a vector, or a person in a microsimulation) or a cell of a
//	square origin × destination matrix:
//	  • rank-1: Vector(n)  → n units
//	  • rank-2: Square(n)  → n×n units, row-major
//
// ✨ Key properties:
//   - one storage layout for both ranks: a flat row-major []float64
//   - Shape travels with the data; mixing shapes is ErrShapeMismatch
//   - values are treated as immutable once handed to an evaluator
//   - gonum interop via FromMat / ToMat
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvchoice/field"
//
//	auto, _ := field.FromVector([]float64{1.0, 0.4})
//	skim, _ := field.FromRows([][]float64{{0, 1.5}, {1.5, 0}})
//	fmt.Println(auto.Shape(), skim.Shape()) // vector(2) square(2)
package field
