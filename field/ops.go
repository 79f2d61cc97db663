// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"sort"
)

// CommonShape returns the shape shared by every field in m.
// Keys are visited in sorted order so the reported offender is stable.
//
// Errors:
//   - ErrNilField: some entry is nil.
//   - ErrShapeMismatch: two entries differ in shape.
//
// An empty map returns the zero Shape and no error; callers decide whether
// emptiness is legal.
func CommonShape(m map[string]*Field) (Shape, error) {
	var (
		shape Shape
		first = true
	)
	for _, k := range SortedKeys(m) {
		f := m[k]
		if f == nil {
			return Shape{}, fmt.Errorf("%q: %w", k, ErrNilField)
		}
		if first {
			shape, first = f.shape, false
			continue
		}
		if f.shape != shape {
			return Shape{}, fmt.Errorf("%q is %s, want %s: %w", k, f.shape, shape, ErrShapeMismatch)
		}
	}

	return shape, nil
}

// Expect checks that f is non-nil and has the given shape.
func Expect(name string, f *Field, shape Shape) error {
	if f == nil {
		return fmt.Errorf("%q: %w", name, ErrNilField)
	}
	if f.shape != shape {
		return fmt.Errorf("%q is %s, want %s: %w", name, f.shape, shape, ErrShapeMismatch)
	}

	return nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]*Field) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
