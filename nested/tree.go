// SPDX-License-Identifier: MIT

package nested

import (
	"fmt"
	"math"
	"sort"
)

// Tree is a validated, immutable choice tree. Build it with NewTree.
type Tree struct {
	nodes  map[string]Node // nests by code
	levels [][]string      // levels[l]: nest codes at depth l, ascending
	leaves []string        // leaf codes, ascending
}

// NewTree validates nodes and returns the Tree they describe.
//
// Validation stages:
//  1. Per node: non-empty code, level >= 0, finite scale > 0, children present.
//  2. Codes unique among nests.
//  3. Exactly one level-0 node and it is RootCode.
//  4. Every child code used once across the whole tree; child nests sit
//     exactly one level below their parent.
//  5. Every nest reachable from ROOT.
//
// Node slices are copied; later changes by the caller do not affect the Tree.
//
// Complexity: O(V log V) for V codes.
func NewTree(nodes ...Node) (*Tree, error) {
	t := &Tree{nodes: make(map[string]Node, len(nodes))}

	// Stage 1 & 2: per-node checks and nest-code uniqueness.
	for _, n := range nodes {
		if err := validateNode(n); err != nil {
			return nil, err
		}
		if _, dup := t.nodes[n.Code]; dup {
			return nil, fmt.Errorf("nest %q defined twice: %w", n.Code, ErrDuplicateCode)
		}
		n.Children = append([]string(nil), n.Children...)
		t.nodes[n.Code] = n
	}

	// Stage 3: the single root.
	root, ok := t.nodes[RootCode]
	if !ok {
		return nil, ErrNoRoot
	}
	if root.Level != 0 {
		return nil, fmt.Errorf("%s at level %d: %w", RootCode, root.Level, ErrBadLevel)
	}
	for code, n := range t.nodes {
		if n.Level == 0 && code != RootCode {
			return nil, fmt.Errorf("second level-0 node %q: %w", code, ErrBadLevel)
		}
	}

	// Stage 4: children.
	seen := make(map[string]string, len(nodes)*2) // child code -> parent code
	for _, parent := range sortedNodes(t.nodes) {
		for _, c := range parent.Children {
			if c == "" {
				return nil, fmt.Errorf("child of %q: %w", parent.Code, ErrEmptyCode)
			}
			if prev, dup := seen[c]; dup {
				return nil, fmt.Errorf("%q under both %q and %q: %w", c, prev, parent.Code, ErrDuplicateCode)
			}
			seen[c] = parent.Code
			if child, nest := t.nodes[c]; nest {
				if child.Level != parent.Level+1 {
					return nil, fmt.Errorf("%q at level %d under %q at level %d: %w",
						c, child.Level, parent.Code, parent.Level, ErrBadLevel)
				}
			} else {
				t.leaves = append(t.leaves, c)
			}
		}
	}

	// Stage 5: reachability, collecting levels on the way.
	reached := make(map[string]bool, len(t.nodes))
	frontier := []string{RootCode}
	for len(frontier) > 0 {
		sort.Strings(frontier)
		t.levels = append(t.levels, frontier)
		var next []string
		for _, code := range frontier {
			reached[code] = true
			for _, c := range t.nodes[code].Children {
				if _, nest := t.nodes[c]; nest {
					next = append(next, c)
				}
			}
		}
		frontier = next
	}
	if len(reached) != len(t.nodes) {
		for _, n := range sortedNodes(t.nodes) {
			if !reached[n.Code] {
				return nil, fmt.Errorf("%q: %w", n.Code, ErrUnreachable)
			}
		}
	}

	sort.Strings(t.leaves)

	return t, nil
}

// validateNode checks one node in isolation.
func validateNode(n Node) error {
	if n.Code == "" {
		return ErrEmptyCode
	}
	if n.Level < 0 {
		return fmt.Errorf("%q at level %d: %w", n.Code, n.Level, ErrBadLevel)
	}
	if math.IsNaN(n.Scale) || math.IsInf(n.Scale, 0) || n.Scale <= 0 {
		return fmt.Errorf("%q scale %v: %w", n.Code, n.Scale, ErrBadScale)
	}
	if len(n.Children) == 0 {
		return fmt.Errorf("%q: %w", n.Code, ErrEmptyNest)
	}

	return nil
}

// sortedNodes returns nests ordered by (level, code).
func sortedNodes(m map[string]Node) []Node {
	out := make([]Node, 0, len(m))
	for _, n := range m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}

		return out[i].Code < out[j].Code
	})

	return out
}

// Depth returns the number of nest levels (1 for a ROOT-only tree).
func (t *Tree) Depth() int { return len(t.levels) }

// Leaves returns the leaf codes in ascending order.
func (t *Tree) Leaves() []string { return append([]string(nil), t.leaves...) }

// Node returns the nest with the given code.
func (t *Tree) Node(code string) (Node, bool) {
	n, ok := t.nodes[code]
	if ok {
		n.Children = append([]string(nil), n.Children...)
	}

	return n, ok
}

// Nodes returns every nest ordered by (level, code).
func (t *Tree) Nodes() []Node {
	out := sortedNodes(t.nodes)
	for i := range out {
		out[i].Children = append([]string(nil), out[i].Children...)
	}

	return out
}

// Codes returns every nest and leaf code in ascending order.
func (t *Tree) Codes() []string {
	out := make([]string, 0, len(t.nodes)+len(t.leaves))
	for code := range t.nodes {
		out = append(out, code)
	}
	out = append(out, t.leaves...)
	sort.Strings(out)

	return out
}
