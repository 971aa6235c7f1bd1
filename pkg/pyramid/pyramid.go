package pyramid

import (
	"github.com/matzehuels/pyrapath/pkg/errors"
)

// NoChild marks an absent child index on a base-row node.
const NoChild = -1

// Node is one pyramid cell. Left and Right are arena indices of the two cells
// below it, or [NoChild] for base-row cells.
type Node struct {
	Value int64
	Row   int
	Col   int
	Left  int
	Right int
}

// IsLeaf reports whether the node lacks either child. Evaluation treats such a
// node as the end of a path.
func (n Node) IsLeaf() bool { return n.Left == NoChild || n.Right == NoChild }

// Graph is the shared-node graph built over a pyramid.
//
// The zero value is not usable - use [Build].
type Graph struct {
	nodes     []Node
	apex      int
	depth     int
	truncated []int
}

// BuildOption configures [Build].
type BuildOption func(*buildConfig)

type buildConfig struct {
	lenient bool
}

// WithLenient trims rows that carry more cells than their position requires
// instead of failing. The resulting graph reports Canonical() == false.
func WithLenient() BuildOption {
	return func(c *buildConfig) { c.lenient = true }
}

// Build constructs the shared-node graph for rows given apex-first, where row
// i is expected to hold i+1 cells.
//
// Rows are processed from the base upward: base cells become leaves, and node
// j of each row above takes node j of the row below as its left child and node
// j+1 as its right child. The input slices are not retained.
//
// Build returns a MALFORMED_PYRAMID error when rows is empty, when a row is
// shorter than its position requires, or, unless [WithLenient] is given, when
// a row is longer.
func Build(rows [][]int64, opts ...BuildOption) (*Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	depth := len(rows)
	if depth == 0 {
		return nil, errors.New(errors.ErrCodeMalformedPyramid, "pyramid has no rows")
	}

	var truncated []int
	for i, row := range rows {
		want := i + 1
		switch {
		case len(row) < want:
			return nil, errors.Wrap(errors.ErrCodeMalformedPyramid,
				&errors.RowLengthError{Row: i, Want: want, Got: len(row)},
				"missing cells in row %d", i)
		case len(row) > want && !cfg.lenient:
			return nil, errors.Wrap(errors.ErrCodeMalformedPyramid,
				&errors.RowLengthError{Row: i, Want: want, Got: len(row)},
				"excess cells in row %d", i)
		case len(row) > want:
			truncated = append(truncated, i)
		}
	}

	g := &Graph{
		nodes:     make([]Node, depth*(depth+1)/2),
		depth:     depth,
		truncated: truncated,
	}

	base := depth - 1
	lower := make([]int, base+1)
	for j := range lower {
		idx := index(base, j)
		g.nodes[idx] = Node{Value: rows[base][j], Row: base, Col: j, Left: NoChild, Right: NoChild}
		lower[j] = idx
	}

	for i := base - 1; i >= 0; i-- {
		upper := make([]int, i+1)
		for j := range upper {
			idx := index(i, j)
			g.nodes[idx] = Node{Value: rows[i][j], Row: i, Col: j, Left: lower[j], Right: lower[j+1]}
			upper[j] = idx
		}
		lower = upper
	}

	g.apex = lower[0]
	return g, nil
}

// index maps (row, col) to the arena slot.
func index(row, col int) int {
	return row*(row+1)/2 + col
}

// Depth returns the number of rows.
func (g *Graph) Depth() int { return g.depth }

// Len returns the number of distinct nodes (cells) in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// PathCount returns the number of descent paths, 2^(depth-1), or -1 when the
// count does not fit in an int.
func (g *Graph) PathCount() int {
	if g.depth-1 >= 63 {
		return -1
	}
	return 1 << (g.depth - 1)
}

// Apex returns the arena index of the apex node.
func (g *Graph) Apex() int { return g.apex }

// At returns the node stored at arena index idx.
func (g *Graph) At(idx int) Node { return g.nodes[idx] }

// Node returns the cell at (row, col).
func (g *Graph) Node(row, col int) (Node, bool) {
	if row < 0 || row >= g.depth || col < 0 || col > row {
		return Node{}, false
	}
	return g.nodes[index(row, col)], true
}

// Row returns a copy of the nodes in row i, left to right.
func (g *Graph) Row(i int) []Node {
	if i < 0 || i >= g.depth {
		return nil
	}
	out := make([]Node, i+1)
	copy(out, g.nodes[index(i, 0):index(i, 0)+i+1])
	return out
}

// Canonical reports whether every row had exactly the expected cell count.
func (g *Graph) Canonical() bool { return len(g.truncated) == 0 }

// Truncated returns the indices of rows that were trimmed in lenient mode.
func (g *Graph) Truncated() []int {
	out := make([]int, len(g.truncated))
	copy(out, g.truncated)
	return out
}
