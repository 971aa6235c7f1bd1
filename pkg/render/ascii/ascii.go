// Package ascii renders pyramid graphs as indented plain-text triangles.
//
// Each row is right-aligned in fixed-width columns and indented by half a
// column per remaining row, so children sit visually between their parents:
//
//	           2
//	        4     3
//	     3     2     6
//
// A path label can be supplied to mark the cells it visits, or to print
// those cells alone with every other cell blanked out.
package ascii

import (
	"strconv"
	"strings"

	"github.com/matzehuels/pyrapath/pkg/pyramid"
)

// minCellWidth matches the column width used for pyramids of small values.
const minCellWidth = 6

// Options configures text rendering.
type Options struct {
	// Path is a descent label such as "LRLL". Empty means no path.
	Path string

	// OnlyPath blanks every cell that Path does not visit.
	OnlyPath bool

	// Mark decorates cells on Path, for example with terminal colors.
	// It receives the padded cell text. Nil leaves cells undecorated.
	Mark func(string) string
}

// Render returns the text form of g, one line per row, each terminated by a
// newline. An invalid Path is treated as empty.
func Render(g *pyramid.Graph, opts Options) string {
	if _, err := g.Replay(opts.Path); err != nil {
		opts.Path = ""
	}

	onPath := map[[2]int]bool{}
	if opts.Path != "" {
		for _, c := range g.Cells(opts.Path) {
			onPath[c] = true
		}
	}

	width := cellWidth(g)
	var b strings.Builder
	for i := 0; i < g.Depth(); i++ {
		line := strings.Repeat(" ", (g.Depth()-1-i)*width/2)
		for _, n := range g.Row(i) {
			text := strconv.FormatInt(n.Value, 10)
			cell := strings.Repeat(" ", width-len(text)) + text
			hit := onPath[[2]int{n.Row, n.Col}]
			switch {
			case hit && opts.Mark != nil:
				cell = opts.Mark(cell)
			case !hit && opts.OnlyPath && opts.Path != "":
				cell = strings.Repeat(" ", width)
			}
			line += cell
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// cellWidth is wide enough for the longest value plus a separating space,
// and even so that half-column indents stay aligned.
func cellWidth(g *pyramid.Graph) int {
	w := minCellWidth
	for i := 0; i < g.Len(); i++ {
		if n := len(strconv.FormatInt(g.At(i).Value, 10)) + 1; n > w {
			w = n
		}
	}
	if w%2 == 1 {
		w++
	}
	return w
}
