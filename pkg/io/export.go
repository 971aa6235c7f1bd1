package io

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pyrapath/pkg/errors"
	"github.com/matzehuels/pyrapath/pkg/pyramid"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

// ValidateFormat returns INVALID_FORMAT for unknown formats.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want text, json or yaml)", format)
	}
	return nil
}

// Report is the serializable outcome of a solve.
//
// Products and the target are decimal strings so that arbitrarily large
// values survive JSON and YAML round trips.
type Report struct {
	Target        string  `json:"target" yaml:"target"`
	Depth         int     `json:"depth" yaml:"depth"`
	Paths         int     `json:"paths" yaml:"paths"`
	Canonical     bool    `json:"canonical" yaml:"canonical"`
	TruncatedRows []int   `json:"truncated_rows,omitempty" yaml:"truncated_rows,omitempty"`
	Matches       []Match `json:"matches" yaml:"matches"`

	// MatchesTruncated is set when Matches was capped and more paths match.
	MatchesTruncated bool `json:"matches_truncated,omitempty" yaml:"matches_truncated,omitempty"`
}

// Match is one matching path in a [Report].
type Match struct {
	Path    string  `json:"path" yaml:"path"`
	Product string  `json:"product" yaml:"product"`
	Values  []int64 `json:"values,omitempty" yaml:"values,omitempty"`
}

// NewReport assembles a report for target over g from the given matches.
func NewReport(target *big.Int, g *pyramid.Graph, matches []pyramid.Result) Report {
	r := Report{
		Target:        target.String(),
		Depth:         g.Depth(),
		Paths:         g.PathCount(),
		Canonical:     g.Canonical(),
		TruncatedRows: g.Truncated(),
		Matches:       make([]Match, len(matches)),
	}
	for i, m := range matches {
		r.Matches[i] = Match{Path: m.Label, Product: m.Product.String(), Values: m.Values}
	}
	return r
}

// NoPathMessage is printed when no path reaches the target.
func NoPathMessage(target string) string {
	return fmt.Sprintf("No path through the pyramid has a product of %s.", target)
}

// WriteText writes one matching label per line, or [NoPathMessage] when there
// are none. With values set, each label is followed by its value trail.
func WriteText(w io.Writer, r Report, values bool) error {
	if len(r.Matches) == 0 {
		_, err := fmt.Fprintln(w, NoPathMessage(r.Target))
		return err
	}
	for _, m := range r.Matches {
		line := m.Path
		if values {
			line = fmt.Sprintf("%s  %s = %s", m.Path, trail(m.Values), m.Product)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func trail(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " × ")
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes r as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Write encodes r in the given format.
func Write(w io.Writer, r Report, format string, values bool) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r, values)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return ValidateFormat(format)
	}
}

// Export writes r to the file at path in the given format.
func Export(r Report, path, format string, values bool) error {
	if format != "" {
		if err := ValidateFormat(format); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "cannot create %s", path)
	}
	if err := Write(f, r, format, values); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeFileWrite, err, "cannot write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "cannot write %s", path)
	}
	return nil
}
