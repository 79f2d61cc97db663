// SPDX-License-Identifier: MIT

package nested

import "errors"

// Tree-definition errors are reported by NewTree; input errors by Evaluate.
// All are matched with errors.Is.
var (
	// ErrNilTree indicates Evaluate was called with a nil *Tree.
	ErrNilTree = errors.New("nested: tree is nil")

	// ErrNoRoot indicates the definition has no node coded RootCode.
	ErrNoRoot = errors.New("nested: tree has no ROOT node")

	// ErrBadLevel indicates a level that is negative, a second level-0 node,
	// ROOT away from level 0, or a nest not exactly one level below its parent.
	ErrBadLevel = errors.New("nested: malformed level numbering")

	// ErrDuplicateCode indicates a code used at more than one tree position.
	ErrDuplicateCode = errors.New("nested: code is not unique across the tree")

	// ErrEmptyCode indicates a node or child with an empty code.
	ErrEmptyCode = errors.New("nested: empty code")

	// ErrEmptyNest indicates a node without children.
	ErrEmptyNest = errors.New("nested: node has no children")

	// ErrBadScale indicates a scale parameter that is not finite and > 0.
	ErrBadScale = errors.New("nested: scale must be finite and positive")

	// ErrUnreachable indicates a node not reachable from ROOT.
	ErrUnreachable = errors.New("nested: node unreachable from ROOT")

	// ErrUnknownCode indicates a leaf code with no utility in the value store.
	ErrUnknownCode = errors.New("nested: no utility for code")
)
