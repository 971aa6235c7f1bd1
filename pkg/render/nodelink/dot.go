package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pyrapath/pkg/pyramid"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the (row, col) position in node labels.
	// When false, only the cell value is shown.
	Detailed bool

	// Highlight lists path labels whose cells and edges are emphasized.
	// Labels that do not fit the pyramid are ignored.
	Highlight []string
}

// ToDOT converts a pyramid graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Each cell is emitted once even though it may be reached from two parents,
// so the diagram shows the shared-node structure rather than an expanded
// tree. Cells of one row are pinned to the same rank, and edges are labeled
// with the direction symbol used in path labels.
func ToDOT(g *pyramid.Graph, opts Options) string {
	onCell, onEdge := highlighted(g, opts.Highlight)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  edge [fontsize=10, fontcolor=grey40];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i := 0; i < g.Depth(); i++ {
		ids := make([]string, 0, i+1)
		for _, n := range g.Row(i) {
			id := nodeID(n)
			ids = append(ids, strconv.Quote(id))
			attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))}
			if onCell[[2]int{n.Row, n.Col}] {
				attrs = append(attrs, "fillcolor=\"#2aa198\"", "fontcolor=white", "penwidth=2")
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s }\n", strings.Join(ids, "; "))
	}

	buf.WriteString("\n")
	for i := 0; i < g.Depth()-1; i++ {
		for _, n := range g.Row(i) {
			for _, child := range []struct {
				idx int
				dir string
			}{{n.Left, "L"}, {n.Right, "R"}} {
				if child.idx == pyramid.NoChild {
					continue
				}
				c := g.At(child.idx)
				attrs := []string{fmt.Sprintf("label=%q", child.dir)}
				if onEdge[edgeKey{from: [2]int{n.Row, n.Col}, to: [2]int{c.Row, c.Col}}] {
					attrs = append(attrs, "color=\"#2aa198\"", "penwidth=3")
				}
				fmt.Fprintf(&buf, "  %q -> %q [%s];\n", nodeID(n), nodeID(c), strings.Join(attrs, ", "))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

type edgeKey struct {
	from, to [2]int
}

func highlighted(g *pyramid.Graph, labels []string) (map[[2]int]bool, map[edgeKey]bool) {
	cells := map[[2]int]bool{}
	edges := map[edgeKey]bool{}
	for _, label := range labels {
		if _, err := g.Replay(label); err != nil {
			continue
		}
		path := g.Cells(label)
		for i, c := range path {
			cells[c] = true
			if i > 0 {
				edges[edgeKey{from: path[i-1], to: c}] = true
			}
		}
	}
	return cells, edges
}

func nodeID(n pyramid.Node) string {
	return fmt.Sprintf("r%dc%d", n.Row, n.Col)
}

func fmtLabel(n pyramid.Node, detailed bool) string {
	v := strconv.FormatInt(n.Value, 10)
	if !detailed {
		return v
	}
	return fmt.Sprintf("%s\n(%d,%d)", v, n.Row, n.Col)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
