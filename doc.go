/*
Package sortscope is an educational sorting engine that records every
comparison, swap and pivot of twenty textbook sorting algorithms as a replayable
step log.

It separates the computation of a sort from its presentation. The engine runs
the selected algorithm synchronously to completion and returns an append-only
sequence of self-contained steps; a playback driver (see package runner) then
replays that log at whatever pace the viewer chooses.

# Key Features

  - Step Log: Every step carries a full snapshot of the array, the highlighted
    indices and the running comparison/swap counters.
  - Uniform Registry: Algorithms are bound to identifiers; unknown identifiers
    fall back to bubble sort instead of failing.
  - Static Catalog: Names, descriptions and textbook complexities for display.
  - Adapters: CLI, HTTP, MCP and Prometheus metrics are built on the same engine.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/sortscope"
	)

	func main() {
		eng := sortscope.New()

		res := eng.RunValues(context.Background(), "quick", []int{5, 3, 1, 4, 2})
		for i, step := range res.Steps {
			fmt.Println(i, step.Comparing, step.Swapping, step.Stats.Comparisons)
		}
		fmt.Println("final:", res.Final)
	}
*/
package sortscope
