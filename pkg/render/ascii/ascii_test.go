package ascii

import (
	"strings"
	"testing"

	"github.com/matzehuels/pyrapath/pkg/pyramid"
)

func build(t *testing.T, rows [][]int64) *pyramid.Graph {
	t.Helper()
	g, err := pyramid.Build(rows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g
}

func TestRender(t *testing.T) {
	g := build(t, [][]int64{{1}, {2, 3}, {4, 5, 6}})

	want := "" +
		"           1\n" +
		"        2     3\n" +
		"     4     5     6\n"
	if got := Render(g, Options{}); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderOnlyPath(t *testing.T) {
	g := build(t, [][]int64{{1}, {2, 3}, {4, 5, 6}})

	want := "" +
		"           1\n" +
		"              3\n" +
		"           5\n"
	if got := Render(g, Options{Path: "RL", OnlyPath: true}); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderMark(t *testing.T) {
	g := build(t, [][]int64{{2}, {4, 3}, {3, 2, 6}, {2, 9, 5, 2}, {10, 5, 2, 15, 5}})
	mark := func(s string) string { return "[" + strings.TrimSpace(s) + "]" }

	got := Render(g, Options{Path: "LRLL", Mark: mark})

	for _, v := range []string{"[2]", "[4]", "[9]", "[5]"} {
		if !strings.Contains(got, v) {
			t.Errorf("Render() missing marked cell %s:\n%s", v, got)
		}
	}
	if strings.Count(got, "[") != 5 {
		t.Errorf("Render() marked %d cells, want 5:\n%s", strings.Count(got, "["), got)
	}
	if strings.Contains(got, "[10]") || strings.Contains(got, "[15]") {
		t.Errorf("Render() marked off-path cells:\n%s", got)
	}
}

func TestRenderInvalidPathIgnored(t *testing.T) {
	g := build(t, [][]int64{{1}, {2, 3}})
	plain := Render(g, Options{})

	for _, path := range []string{"LR", "X"} {
		if got := Render(g, Options{Path: path, OnlyPath: true}); got != plain {
			t.Errorf("Render(Path=%q) =\n%s\nwant\n%s", path, got, plain)
		}
	}
}

func TestRenderWideValues(t *testing.T) {
	g := build(t, [][]int64{{1234567}, {1, 2}})
	lines := strings.Split(strings.TrimRight(Render(g, Options{}), "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	// Width 8: apex indented half a column, base row two full columns.
	if lines[0] != "     1234567" {
		t.Errorf("apex line = %q", lines[0])
	}
	if lines[1] != "       1       2" {
		t.Errorf("base line = %q", lines[1])
	}
}
