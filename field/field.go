// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// fieldErrorf wraps an underlying error with Field method context.
func fieldErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Field.%s(%d): %w", method, idx, err)
}

// Field is a UtilityField: one float64 per decision unit, stored flat in
// row-major order whatever the rank. A Field handed to an evaluator is never
// written by it; evaluators return fresh Fields.
type Field struct {
	shape Shape
	data  []float64 // len(data) == shape.Size()
}

// New allocates a zero-filled Field of the given shape.
// Complexity: O(size) time and memory.
func New(shape Shape) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Field{shape: shape, data: make([]float64, shape.Size())}, nil
}

// Fill allocates a Field of the given shape with every unit set to v.
func Fill(shape Shape, v float64) (*Field, error) {
	f, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range f.data {
		f.data[i] = v
	}

	return f, nil
}

// FromVector copies data into a rank-1 Field.
func FromVector(data []float64) (*Field, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty vector: %w", ErrBadShape)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Field{shape: Vector(len(data)), data: cp}, nil
}

// FromRows copies a square [][]float64 into a rank-2 Field.
// Stage 1 (Validate): at least one row, every row of length len(rows).
// Stage 2 (Execute): flatten row-major.
func FromRows(rows [][]float64) (*Field, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("empty matrix: %w", ErrBadShape)
	}
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		data = append(data, row...)
	}

	return &Field{shape: Square(n), data: data}, nil
}

// FromFlat copies data into a Field of the given shape. len(data) must equal
// shape.Size().
func FromFlat(shape Shape, data []float64) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%d values for %s: %w", len(data), shape, ErrShapeMismatch)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Field{shape: shape, data: cp}, nil
}

// Wrap builds a Field over data without copying. The caller hands over
// ownership and must not touch data afterwards.
func Wrap(shape Shape, data []float64) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%d values for %s: %w", len(data), shape, ErrShapeMismatch)
	}

	return &Field{shape: shape, data: data}, nil
}

// FromMat copies a square gonum matrix into a rank-2 Field.
func FromMat(m mat.Matrix) (*Field, error) {
	if m == nil {
		return nil, ErrNilField
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare)
	}
	if r == 0 {
		return nil, ErrBadShape
	}
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}

	return &Field{shape: Square(r), data: data}, nil
}

// Shape returns the unit layout.
func (f *Field) Shape() Shape { return f.shape }

// Len returns the number of decision units.
func (f *Field) Len() int { return len(f.data) }

// At returns the value at flat unit index i.
func (f *Field) At(i int) (float64, error) {
	if i < 0 || i >= len(f.data) {
		return 0, fieldErrorf("At", i, ErrOutOfRange)
	}

	return f.data[i], nil
}

// AtRC returns the value at (origin row, destination col) of a rank-2 Field.
func (f *Field) AtRC(row, col int) (float64, error) {
	if f.shape.Rank != RankSquare {
		return 0, fmt.Errorf("Field.AtRC on %s: %w", f.shape, ErrBadShape)
	}
	n := f.shape.N
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, fmt.Errorf("Field.AtRC(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return f.data[row*n+col], nil
}

// Raw exposes the backing row-major slice. Read it, do not write it.
func (f *Field) Raw() []float64 { return f.data }

// Clone returns a deep copy.
// Complexity: O(size).
func (f *Field) Clone() *Field {
	cp := make([]float64, len(f.data))
	copy(cp, f.data)

	return &Field{shape: f.shape, data: cp}
}

// Sum returns the total over all units.
func (f *Field) Sum() float64 { return floats.Sum(f.data) }

// EqualApprox reports whether g has the same shape and every unit is within tol.
func (f *Field) EqualApprox(g *Field, tol float64) bool {
	if g == nil || f.shape != g.shape {
		return false
	}

	return floats.EqualApprox(f.data, g.data, tol)
}

// ToMat copies the Field into a gonum Dense: n×n for rank-2, n×1 for rank-1.
func (f *Field) ToMat() *mat.Dense {
	cp := make([]float64, len(f.data))
	copy(cp, f.data)
	if f.shape.Rank == RankSquare {
		return mat.NewDense(f.shape.N, f.shape.N, cp)
	}

	return mat.NewDense(f.shape.N, 1, cp)
}

// String implements fmt.Stringer for debugging; matrices print one row per line.
func (f *Field) String() string {
	var sb strings.Builder
	width := len(f.data)
	if f.shape.Rank == RankSquare {
		width = f.shape.N
	}
	for start := 0; start < len(f.data); start += width {
		sb.WriteString("[")
		for j := start; j < start+width; j++ {
			if j > start {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", f.data[j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
