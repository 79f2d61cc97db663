// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
)

// Rank values accepted by Shape.
const (
	RankVector = 1
	RankSquare = 2
)

// Shape describes the unit layout of a Field.
//
//   - Rank=1: N units stored as a vector.
//   - Rank=2: N×N units (origin × destination), row-major.
//
// The zero Shape is invalid.
type Shape struct {
	Rank int
	N    int
}

// Vector returns the rank-1 shape of length n.
func Vector(n int) Shape { return Shape{Rank: RankVector, N: n} }

// Square returns the rank-2 shape with extent n on both axes.
func Square(n int) Shape { return Shape{Rank: RankSquare, N: n} }

// Size is the number of decision units: N for vectors, N*N for matrices.
// Complexity: O(1).
func (s Shape) Size() int {
	if s.Rank == RankSquare {
		return s.N * s.N
	}

	return s.N
}

// Validate reports ErrBadShape for an unknown rank, N <= 0, or a square
// extent whose N*N does not fit in an int.
func (s Shape) Validate() error {
	if s.Rank != RankVector && s.Rank != RankSquare {
		return fmt.Errorf("rank %d: %w", s.Rank, ErrBadShape)
	}
	if s.N <= 0 {
		return fmt.Errorf("extent %d: %w", s.N, ErrBadShape)
	}
	if s.Rank == RankSquare && s.N > math.MaxInt/s.N {
		return fmt.Errorf("extent %d overflows square size: %w", s.N, ErrBadShape)
	}

	return nil
}

// String implements fmt.Stringer: "vector(n)" or "square(n)".
func (s Shape) String() string {
	switch s.Rank {
	case RankVector:
		return fmt.Sprintf("vector(%d)", s.N)
	case RankSquare:
		return fmt.Sprintf("square(%d)", s.N)
	default:
		return fmt.Sprintf("invalid(rank=%d,n=%d)", s.Rank, s.N)
	}
}
