// Package nodelink renders pyramid graphs as node-link diagrams.
//
// # Overview
//
// This package produces Graphviz diagrams of the shared-node graph built by
// [github.com/matzehuels/pyrapath/pkg/pyramid]. Every cell appears once, with
// an L edge to its left child and an R edge to its right child, so shared
// cells visibly have two parents.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Highlight: []string{"LRLL"}})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include the (row, col) position
//   - Highlight: Path labels whose cells and edges are drawn emphasized
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
