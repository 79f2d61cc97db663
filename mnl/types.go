// SPDX-License-Identifier: MIT

package mnl

import (
	"errors"

	"github.com/katalvlaran/lvchoice/field"
)

// DegenerateTotal replaces an exponential total that is exactly 0.
const DegenerateTotal = 1e-4

var (
	// ErrNoAlternatives indicates an empty alternative mapping.
	ErrNoAlternatives = errors.New("mnl: at least one alternative is required")

	// ErrMissingAlternative indicates that an alternative is present in one
	// pivot-point input mapping but absent from another.
	ErrMissingAlternative = errors.New("mnl: alternative missing from input")
)

// Options configures Multinomial.
//
// Fields:
//   - Logsum: also return ln Σ exp(U) per unit (computed before the
//     degenerate-total substitution).
//   - Stabilize: subtract the per-unit maximum utility before
//     exponentiating. Non-degenerate probabilities are unchanged up to
//     rounding; units whose utilities all underflow are renormalized and
//     the logsum stays finite.
type Options struct {
	Logsum    bool
	Stabilize bool
}

// DefaultOptions returns Options reproducing the reference arithmetic:
// no logsum, no stabilization.
func DefaultOptions() Options {
	return Options{}
}

// Result holds the output of Multinomial.
//
//   - Probabilities: one Field per alternative, same shape as the inputs.
//   - Logsum: nil unless Options.Logsum was set.
type Result struct {
	Probabilities map[string]*field.Field
	Logsum        *field.Field
}
