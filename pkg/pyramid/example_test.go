package pyramid_test

import (
	"fmt"
	"math/big"

	"github.com/matzehuels/pyrapath/pkg/pyramid"
)

func ExampleBuild() {
	g, err := pyramid.Build([][]int64{{1}, {2, 3}, {4, 5, 6}})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Depth:", g.Depth())
	fmt.Println("Cells:", g.Len())
	fmt.Println("Paths:", g.PathCount())
	// Output:
	// Depth: 3
	// Cells: 6
	// Paths: 4
}

func ExampleEvaluate() {
	g, _ := pyramid.Build([][]int64{{1}, {2, 3}, {4, 5, 6}})

	for _, r := range pyramid.Evaluate(g) {
		fmt.Println(r.Label, r.Product)
	}
	// Output:
	// LL 8
	// LR 10
	// RL 15
	// RR 18
}

func ExampleFilter() {
	g, _ := pyramid.Build([][]int64{
		{2},
		{4, 3},
		{3, 2, 6},
		{2, 9, 5, 2},
		{10, 5, 2, 15, 5},
	})

	for _, r := range pyramid.Filter(pyramid.Evaluate(g), big.NewInt(720)) {
		fmt.Println(r.Label, r.Trail())
	}
	// Output:
	// LRLL 2 → 4 → 2 → 9 → 5
}

func ExampleWithLenient() {
	g, err := pyramid.Build([][]int64{{1, 7}, {2, 3}}, pyramid.WithLenient())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Canonical:", g.Canonical())
	fmt.Println("Truncated rows:", g.Truncated())
	// Output:
	// Canonical: false
	// Truncated rows: [0]
}
