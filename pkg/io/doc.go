// Package io reads pyramid descriptions and writes solve reports.
//
// # Input Format
//
// The input is plain text. The first non-empty line names the target product;
// each following non-empty line is one pyramid row, apex first:
//
//	Target: 720
//	2
//	4,3
//	3,2,6
//	2,9,5,2
//	10,5,2,15,5
//
// The keyword is case-insensitive and may be followed by any mix of
// whitespace, commas, colons or semicolons. Cells may be separated by commas,
// whitespace or both. Blank lines and carriage returns are ignored.
//
// Use [ImportFile] to read from a path or [ReadPyramid] to read from any
// io.Reader. Parse failures carry codes from
// [github.com/matzehuels/pyrapath/pkg/errors] (MISSING_TARGET_KEYWORD,
// INVALID_TARGET, NON_INTEGER_VALUE). Row lengths are left for
// pyramid.Build to judge.
//
// # Output Formats
//
// A [Report] can be written as:
//
//   - text: one matching path label per line, or a "no path" message
//   - json: the full report, indented
//   - yaml: the full report
//
// Products and targets are emitted as decimal strings so that values beyond
// 64 bits are preserved.
//
// # Sample File
//
// [CreateSample] writes [SampleInput] to a new file and never overwrites an
// existing one.
package io
