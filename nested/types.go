// SPDX-License-Identifier: MIT

package nested

import "github.com/katalvlaran/lvchoice/field"

// RootCode is the code of the single level-0 node.
const RootCode = "ROOT"

// Numeric guards of the two passes.
const (
	// LogsumFloor is the lower clamp applied to Σ exp before taking ln.
	LogsumFloor = 1e-9

	// NoViableLogsum replaces the logsum of a nest whose Σ exp is exactly 0.
	NoViableLogsum = -999.0

	// DegenerateTotal replaces an exactly-zero denominator in the downward pass.
	DegenerateTotal = 1e-4
)

// Node is one nest of the choice tree.
//
//   - Level: depth from ROOT (ROOT is 0, its child nests 1, ...).
//   - Code: identifier, unique across the whole tree including leaves.
//   - Scale: nest scale θ > 0. Children's utilities are divided by θ and
//     the nest's logsum is multiplied by θ.
//   - Children: ordered child codes. A child that is not itself a Node is a
//     leaf. The last child absorbs the rounding residue of the split.
type Node struct {
	Level    int
	Code     string
	Scale    float64
	Children []string
}

// Options configures Evaluate.
//
//   - Logsum: also return ROOT's composite utility in Result.Logsum.
//   - Workers: nodes of one level evaluated concurrently; <= 1 is sequential.
type Options struct {
	Logsum  bool
	Workers int
}

// DefaultOptions returns sequential evaluation without the logsum output.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Result is the output of Evaluate.
//
//   - Probabilities: unconditional probability of every nest and leaf;
//     ROOT is 1 at every unit.
//   - Utilities: every non-ROOT code's utility after division by its
//     parent's scale (the value its parent splits on), plus ROOT's
//     composite utility.
//   - Logsum: ROOT's composite utility when Options.Logsum is set.
type Result struct {
	Probabilities map[string]*field.Field
	Utilities     map[string]*field.Field
	Logsum        *field.Field
}
