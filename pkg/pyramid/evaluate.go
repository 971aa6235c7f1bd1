package pyramid

import (
	"iter"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/pyrapath/pkg/errors"
)

// Direction symbols used in path labels.
const (
	Left  = 'L'
	Right = 'R'
)

// Result is one descent path from the apex to a base cell.
type Result struct {
	Label   string   // One 'L' or 'R' per edge descended
	Product *big.Int // Product of every value visited, apex included
	Values  []int64  // Visited values, apex first
}

// Trail formats the visited values as "2 → 4 → 3".
func (r Result) Trail() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " → ")
}

// frame is one pending worklist entry.
type frame struct {
	node    int
	label   []byte
	product *big.Int
	values  []int64
}

// Paths yields every descent path in depth-first, left-before-right order:
// all paths through a node's left child precede all paths through its right
// child. The sequence is restartable and can be stopped early.
//
// Traversal uses an explicit worklist, so pyramid depth is not limited by the
// goroutine stack.
func (g *Graph) Paths() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		stack := []frame{{node: g.apex, product: big.NewInt(1)}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			n := g.nodes[f.node]
			product := new(big.Int).Mul(f.product, big.NewInt(n.Value))
			values := append(f.values[:len(f.values):len(f.values)], n.Value)

			if n.IsLeaf() {
				if !yield(Result{Label: string(f.label), Product: product, Values: values}) {
					return
				}
				continue
			}

			// Right is pushed first so that left pops first.
			stack = append(stack,
				frame{node: n.Right, label: extend(f.label, Right), product: product, values: values},
				frame{node: n.Left, label: extend(f.label, Left), product: product, values: values},
			)
		}
	}
}

func extend(label []byte, dir byte) []byte {
	out := make([]byte, len(label)+1)
	copy(out, label)
	out[len(label)] = dir
	return out
}

// Evaluate returns every descent path of g in the order produced by
// [Graph.Paths].
func Evaluate(g *Graph) []Result {
	return slices.Collect(g.Paths())
}

// Filter returns the results whose product equals target exactly, preserving
// order. An empty result means no path matched; that is not an error.
func Filter(results []Result, target *big.Int) []Result {
	var out []Result
	for _, r := range results {
		if r.Product.Cmp(target) == 0 {
			out = append(out, r)
		}
	}
	return out
}

// Matches yields the paths of g whose product equals target.
func (g *Graph) Matches(target *big.Int) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for r := range g.Paths() {
			if r.Product.Cmp(target) != 0 {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Replay follows label from the apex and recomputes the product of the cells
// it visits. The label must contain exactly Depth()-1 symbols, each 'L' or 'R';
// otherwise an INVALID_PATH error is returned.
func (g *Graph) Replay(label string) (Result, error) {
	if len(label) != g.depth-1 {
		return Result{}, errors.New(errors.ErrCodeInvalidPath,
			"path %q has %d steps, want %d", label, len(label), g.depth-1)
	}

	idx := g.apex
	product := big.NewInt(g.nodes[idx].Value)
	values := []int64{g.nodes[idx].Value}
	for i := 0; i < len(label); i++ {
		n := g.nodes[idx]
		switch label[i] {
		case Left:
			idx = n.Left
		case Right:
			idx = n.Right
		default:
			return Result{}, errors.New(errors.ErrCodeInvalidPath,
				"path %q has invalid step %q at position %d", label, label[i], i)
		}
		v := g.nodes[idx].Value
		product.Mul(product, big.NewInt(v))
		values = append(values, v)
	}

	return Result{Label: label, Product: product, Values: values}, nil
}

// Cells returns the (row, col) positions visited by label, apex first. It
// assumes label has already been validated by [Graph.Replay] or came from
// [Graph.Paths]; steps beyond the base are ignored.
func (g *Graph) Cells(label string) [][2]int {
	cells := [][2]int{{0, 0}}
	col := 0
	for i := 0; i < len(label) && i+1 < g.depth; i++ {
		if label[i] == Right {
			col++
		}
		cells = append(cells, [2]int{i + 1, col})
	}
	return cells
}
