package sortscope_test

import (
	"context"
	"fmt"

	"github.com/aretw0/sortscope"
	"github.com/aretw0/sortscope/pkg/domain"
)

// ExampleEngine_RunValues demonstrates running an algorithm and inspecting its step log.
func ExampleEngine_RunValues() {
	eng := sortscope.New()

	res := eng.RunValues(context.Background(), "bubble", []int{5, 3, 1})

	for i, step := range res.Steps {
		switch {
		case step.Swapping != nil:
			fmt.Printf("%d swap %v\n", i, step.Swapping)
		case step.Comparing != nil:
			fmt.Printf("%d compare %v\n", i, step.Comparing)
		case step.Sorted != nil:
			fmt.Printf("%d sorted %v\n", i, step.Sorted)
		}
	}
	fmt.Println("final:", domain.Values(res.Final))
	fmt.Printf("comparisons=%d swaps=%d time=%s\n", res.Stats.Comparisons, res.Stats.Swaps, res.Stats.TimeComplexity)
	// Output:
	// 0 compare [0 1]
	// 1 swap [0 1]
	// 2 compare [1 2]
	// 3 swap [1 2]
	// 4 sorted [2]
	// 5 compare [0 1]
	// 6 swap [0 1]
	// 7 sorted [1]
	// 8 sorted [0 1 2]
	// final: [1 3 5]
	// comparisons=3 swaps=3 time=O(n²)
}

// ExampleEngine_Catalog lists the algorithms of one category.
func ExampleEngine_Catalog() {
	eng := sortscope.New()

	for _, d := range eng.Catalog() {
		if d.Category == domain.CategoryDivideConquer {
			fmt.Printf("%s: %s %s\n", d.ID, d.TimeComplexity, d.SpaceComplexity)
		}
	}
	// Output:
	// merge: O(n log n) O(n)
	// quick: O(n log n) O(log n)
	// heap: O(n log n) O(1)
}
