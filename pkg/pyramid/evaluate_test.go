package pyramid

import (
	"math/big"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/pyrapath/pkg/errors"
)

func labels(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Label
	}
	return out
}

func TestEvaluateSmall(t *testing.T) {
	g, err := Build(smallRows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	results := Evaluate(g)
	want := []struct {
		label   string
		product int64
		trail   string
	}{
		{"LL", 8, "1 → 2 → 4"},
		{"LR", 10, "1 → 2 → 5"},
		{"RL", 15, "1 → 3 → 5"},
		{"RR", 18, "1 → 3 → 6"},
	}

	if len(results) != len(want) {
		t.Fatalf("Evaluate() returned %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		r := results[i]
		if r.Label != w.label {
			t.Errorf("results[%d].Label = %q, want %q", i, r.Label, w.label)
		}
		if r.Product.Int64() != w.product {
			t.Errorf("results[%d].Product = %s, want %d", i, r.Product, w.product)
		}
		if r.Trail() != w.trail {
			t.Errorf("results[%d].Trail() = %q, want %q", i, r.Trail(), w.trail)
		}
	}
}

func TestFilterScenarios(t *testing.T) {
	g, err := Build(smallRows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	all := Evaluate(g)

	tests := []struct {
		target int64
		want   []string
	}{
		{8, []string{"LL"}},
		{10, []string{"LR"}},
		{15, []string{"RL"}},
		{18, []string{"RR"}},
		{99, nil},
	}

	for _, tt := range tests {
		t.Run(big.NewInt(tt.target).String(), func(t *testing.T) {
			got := labels(Filter(all, big.NewInt(tt.target)))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Filter(%d) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestSampleTarget720(t *testing.T) {
	g, err := Build(sampleRows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	target := big.NewInt(720)
	matches := Filter(Evaluate(g), target)
	if len(matches) == 0 {
		t.Fatal("expected at least one path with product 720")
	}

	for _, m := range matches {
		replayed, err := g.Replay(m.Label)
		if err != nil {
			t.Fatalf("Replay(%q) error = %v", m.Label, err)
		}
		if replayed.Product.Cmp(target) != 0 {
			t.Errorf("Replay(%q).Product = %s, want 720", m.Label, replayed.Product)
		}
		if !slices.Equal(replayed.Values, m.Values) {
			t.Errorf("Replay(%q).Values = %v, want %v", m.Label, replayed.Values, m.Values)
		}
	}

	if matches[0].Label != "LRLL" {
		t.Errorf("first match = %q, want LRLL", matches[0].Label)
	}
}

func TestEvaluateSingleNode(t *testing.T) {
	g, err := Build([][]int64{{-7}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	results := Evaluate(g)
	if len(results) != 1 {
		t.Fatalf("Evaluate() returned %d results, want 1", len(results))
	}
	if results[0].Label != "" {
		t.Errorf("Label = %q, want empty", results[0].Label)
	}
	if results[0].Product.Int64() != -7 {
		t.Errorf("Product = %s, want -7", results[0].Product)
	}
}

func randomRows(r *rand.Rand, depth int) [][]int64 {
	rows := make([][]int64, depth)
	for i := range rows {
		rows[i] = make([]int64, i+1)
		for j := range rows[i] {
			rows[i][j] = r.Int64N(21) - 10
		}
	}
	return rows
}

func TestEvaluateProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for depth := 1; depth <= 10; depth++ {
		g, err := Build(randomRows(r, depth))
		if err != nil {
			t.Fatalf("depth %d: Build() error = %v", depth, err)
		}

		results := Evaluate(g)
		if len(results) != 1<<(depth-1) {
			t.Errorf("depth %d: %d results, want %d", depth, len(results), 1<<(depth-1))
		}

		for _, res := range results {
			if len(res.Label) != depth-1 {
				t.Errorf("depth %d: label %q has length %d", depth, res.Label, len(res.Label))
			}
			if len(res.Values) != depth {
				t.Errorf("depth %d: %d values, want %d", depth, len(res.Values), depth)
			}
			replayed, err := g.Replay(res.Label)
			if err != nil {
				t.Fatalf("Replay(%q) error = %v", res.Label, err)
			}
			if replayed.Product.Cmp(res.Product) != 0 {
				t.Errorf("Replay(%q) = %s, want %s", res.Label, replayed.Product, res.Product)
			}
		}

		got := labels(results)
		if !slices.IsSorted(got) {
			t.Errorf("depth %d: labels not in L<R lexicographic order: %v", depth, got)
		}
		if len(slices.Compact(slices.Clone(got))) != len(got) {
			t.Errorf("depth %d: duplicate labels", depth)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	g, err := Build(sampleRows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	first := Evaluate(g)
	second := Evaluate(g)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Label != second[i].Label || first[i].Product.Cmp(second[i].Product) != 0 {
			t.Errorf("result %d differs: %v vs %v", i, first[i], second[i])
		}
		if !slices.Equal(first[i].Values, second[i].Values) {
			t.Errorf("result %d values differ: %v vs %v", i, first[i].Values, second[i].Values)
		}
	}
}

func TestEvaluateSharedSubpaths(t *testing.T) {
	g, err := Build(sampleRows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	byLabel := map[string]Result{}
	for _, r := range Evaluate(g) {
		byLabel[r.Label] = r
	}

	// "LR..." and "RL..." both pass through cell (2,1), so their value
	// sequences below it must agree for the same suffix.
	for _, suffix := range []string{"LL", "LR", "RL", "RR"} {
		a := byLabel["LR"+suffix].Values[2:]
		b := byLabel["RL"+suffix].Values[2:]
		if !slices.Equal(a, b) {
			t.Errorf("suffix %s: %v != %v", suffix, a, b)
		}
	}
}

func TestEvaluateNoOverflow(t *testing.T) {
	const depth = 40
	rows := make([][]int64, depth)
	for i := range rows {
		rows[i] = slices.Repeat([]int64{1 << 20}, i+1)
	}
	g, err := Build(rows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var first Result
	for r := range g.Paths() {
		first = r
		break
	}

	want := new(big.Int).Lsh(big.NewInt(1), 20*depth)
	if first.Product.Cmp(want) != 0 {
		t.Errorf("Product = %s, want 2^%d", first.Product, 20*depth)
	}
	if first.Label != strings.Repeat("L", depth-1) {
		t.Errorf("first label = %q", first.Label)
	}
}

func TestMatchesStopsEarly(t *testing.T) {
	g, err := Build([][]int64{{1}, {1, 1}, {1, 1, 1}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	count := 0
	for range g.Matches(big.NewInt(1)) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestReplayErrors(t *testing.T) {
	g, err := Build(smallRows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, label := range []string{"", "L", "LLL", "LX", "lr"} {
		t.Run(label, func(t *testing.T) {
			if _, err := g.Replay(label); !errors.Is(err, errors.ErrCodeInvalidPath) {
				t.Errorf("Replay(%q) error = %v, want INVALID_PATH", label, err)
			}
		})
	}
}

func TestCells(t *testing.T) {
	g, err := Build(smallRows)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := g.Cells("RL")
	want := [][2]int{{0, 0}, {1, 1}, {2, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Cells(RL) = %v, want %v", got, want)
	}
}

func TestZeroAndNegativeValues(t *testing.T) {
	g, err := Build([][]int64{{-1}, {0, -2}, {3, 4, -5}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	got := map[string]int64{}
	for _, r := range Evaluate(g) {
		got[r.Label] = r.Product.Int64()
	}
	want := map[string]int64{"LL": 0, "LR": 0, "RL": 8, "RR": -10}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %d, want %d", k, got[k], v)
		}
	}
}
