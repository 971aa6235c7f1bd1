// Package render groups the visual outputs for pyramid graphs.
//
// # Overview
//
// Rendering is split by target medium:
//
//   - Plain-text triangles for terminals (in [ascii] subpackage)
//   - Node-link diagrams via Graphviz (in [nodelink] subpackage)
//
// Both renderers accept path labels so that a matching descent can be
// shown against the rest of the pyramid.
//
// # Text Output
//
// The [ascii] subpackage prints the pyramid as an indented triangle. The
// CLI uses it for verbose solve output and the interactive explorer.
//
//	fmt.Print(ascii.Render(g, ascii.Options{Path: "LRLL", OnlyPath: true}))
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage emits Graphviz DOT with one node per cell and
// labeled L/R edges, and renders it to SVG in-process.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Highlight: []string{"LRLL"}})
//	svg, err := nodelink.RenderSVG(dot)
//
// [ascii]: github.com/matzehuels/pyrapath/pkg/render/ascii
// [nodelink]: github.com/matzehuels/pyrapath/pkg/render/nodelink
package render
