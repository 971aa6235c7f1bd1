// Package pyramid builds a shared-node graph over a triangular pyramid of
// integers and enumerates every left/right descent path from the apex to the
// base together with the product of the values it visits.
//
// # Overview
//
// A pyramid of depth d has d rows; row i holds i+1 cells and row 0 is the
// apex. Every cell above the base has two children in the row below: the cell
// at the same column (left) and the cell one column to the right (right).
// Adjacent cells share a child, so the structure is a directed acyclic graph
// that is traversed as if it were a binary tree:
//
//	      1
//	     / \
//	    2   3
//	   / \ / \
//	  4   5   6
//
// Cell 2's right child and cell 3's left child are the same node (5). Walking
// the graph still yields four distinct paths: LL, LR, RL and RR.
//
// # Building
//
// [Build] takes rows apex-first and returns an immutable [Graph]. Nodes are
// stored in an arena indexed by (row, column); parents hold child indices
// rather than pointers, so there is no shared ownership to reason about.
//
//	g, err := pyramid.Build([][]int64{{1}, {2, 3}, {4, 5, 6}})
//
// Shape violations are reported as MALFORMED_PYRAMID errors from
// [github.com/matzehuels/pyrapath/pkg/errors]. [WithLenient] trims over-long
// rows instead of failing and marks the graph non-canonical; rows that are too
// short are always rejected.
//
// # Evaluating
//
// [Graph.Paths] lazily yields one [Result] per base cell reached, in
// depth-first left-before-right order. [Evaluate] collects them, [Filter]
// keeps the ones whose product equals a target, and [Graph.Replay] re-walks a
// single label to recompute its product.
//
// Products use [math/big] so deep pyramids never overflow silently.
//
// # Concurrency
//
// A Graph is read-only after Build returns and may be evaluated from several
// goroutines at once.
package pyramid
