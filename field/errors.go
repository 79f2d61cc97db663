// SPDX-License-Identifier: MIT

package field

import "errors"

// Every message is prefixed with "field: " so it can be grepped across logs.
// Return sentinels directly or wrap them with fmt.Errorf("ctx: %w", ErrX);
// callers match with errors.Is.
var (
	// ErrBadShape is returned when a shape has an unknown rank or a non-positive extent.
	ErrBadShape = errors.New("field: invalid shape")

	// ErrShapeMismatch indicates that two fields taking part in one call differ in shape.
	ErrShapeMismatch = errors.New("field: shape mismatch")

	// ErrNonSquare signals that rank-2 input was not n×n.
	ErrNonSquare = errors.New("field: matrix is not square")

	// ErrOutOfRange indicates that a unit index is outside the field.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrNilField indicates a nil *Field was passed where data is required.
	ErrNilField = errors.New("field: nil field")
)
