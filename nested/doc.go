// SPDX-License-Identifier: MIT

// Package nested evaluates nested-logit choice probabilities over a tree of
// nests of arbitrary depth.
//
// 🚀 What is a nested logit?
//
//	Alternatives that share unobserved attributes (two transit sub-modes,
//	say) are grouped under a nest. Every nest carries a scale parameter θ:
//	its children's utilities are divided by θ, combined into a logsum, and
//	the nest is seen by its parent as a single alternative of utility
//	θ · ln Σ exp(U_child / θ).
//
//	                             ROOT
//	                            / |  \
//	                          AU  TR  AC      (nests, each with θ)
//	                         /\   /\   /\
//	                       CD CP TB TP BK WK  (leaves, utilities supplied)
//
// ✨ Evaluation:
//   - Upward pass: deepest level first: scale children, logsum, store θ·logsum.
//   - Downward pass: ROOT (probability 1) first: split each nest's
//     probability between its children by the multinomial share of their
//     scaled utilities.
//   - Level barrier: a level is finished before the adjacent one starts.
//     Within a level nodes are independent; Options.Workers > 1 runs them
//     concurrently.
//
// Residual policy:
//
//	The last child in a node's Children list gets parent · (1 − Σ earlier
//	conditionals) instead of its own quotient, so children always add up to
//	their parent. Child order is therefore part of the tree definition.
//
// Numeric guards:
//
//	An all-underflow nest gets logsum NoViableLogsum (-999) instead of -Inf;
//	an all-underflow split uses DegenerateTotal (1e-4) as denominator.
//
// ⚙️ Usage:
//
//	tree, err := nested.NewTree(
//	  nested.Node{Level: 0, Code: nested.RootCode, Scale: 1.0, Children: []string{"AU", "TR"}},
//	  nested.Node{Level: 1, Code: "TR", Scale: 0.7, Children: []string{"WB", "WX"}},
//	)
//	res, err := nested.Evaluate(ctx, tree, leafUtilities, field.Vector(1), nil)
//
// A Tree is immutable once built and may be shared by concurrent Evaluate
// calls. Leaf utilities are never written.
package nested
