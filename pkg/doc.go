// Package pkg provides the libraries behind pyrapath.
//
// # Overview
//
// Pyrapath reads a pyramid of integers and a target product, enumerates every
// descent path from the apex to the base, and reports the paths whose values
// multiply to the target. The pkg directory is organized into these areas:
//
//  1. [pyramid] - Domain logic (shared-node graph, path evaluation)
//  2. [io] - Text input parsing and text/JSON/YAML reports
//  3. [pipeline] - Orchestration (parse → build → evaluate → filter)
//  4. [render] - Text and Graphviz renderings of a pyramid
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through pyrapath:
//
//	Input file ("Target: 720" + rows)
//	         ↓
//	    [io] package (parse target and rows)
//	         ↓
//	    [pyramid] package (build graph, enumerate paths)
//	         ↓
//	    [pipeline] package (filter by target, hooks, stats)
//	         ↓
//	    Path labels, JSON/YAML report, DOT/SVG diagram
//
// # Quick Start
//
// Solve a pyramid held in memory:
//
//	import (
//	    "fmt"
//	    "math/big"
//	    "github.com/matzehuels/pyrapath/pkg/pyramid"
//	)
//
//	g, err := pyramid.Build([][]int64{{2}, {4, 3}, {3, 2, 6}})
//	if err != nil {
//	    return err
//	}
//	for r := range g.Matches(big.NewInt(24)) {
//	    fmt.Println(r.Label)
//	}
//
// [pyramid]: github.com/matzehuels/pyrapath/pkg/pyramid
// [io]: github.com/matzehuels/pyrapath/pkg/io
// [pipeline]: github.com/matzehuels/pyrapath/pkg/pipeline
// [render]: github.com/matzehuels/pyrapath/pkg/render
// [errors]: github.com/matzehuels/pyrapath/pkg/errors
// [observability]: github.com/matzehuels/pyrapath/pkg/observability
// [buildinfo]: github.com/matzehuels/pyrapath/pkg/buildinfo
package pkg
