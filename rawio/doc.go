// SPDX-License-Identifier: MIT

// Package rawio moves UtilityFields to and from headerless binary dumps.
//
// Format:
//
//	A file is nothing but the field's values as little-endian IEEE-754
//	float64, row-major, no header, no padding. A square n×n matrix is
//	8·n² bytes and a vector of length n is 8·n bytes; the reader supplies
//	(or infers) the shape. This is the layout a numpy array of float64
//	produces with tofile() on little-endian hardware.
//
// ⚙️ Usage:
//
//	skim, err := rawio.ReadFile("in/801.bin", field.Square(3399))
//	...
//	err = rawio.WriteFile("out/AU.bin", res.Probabilities["AU"])
package rawio
