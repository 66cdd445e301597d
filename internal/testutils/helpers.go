// Package testutils holds assertions shared by the engine and adapter tests.
package testutils

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/generator"
)

// Elements wraps values into elements with generated IDs.
func Elements(values ...int) []domain.Element {
	return generator.FromValues(values)
}

// SortedIDs returns the element IDs in lexical order, for permutation checks.
func SortedIDs(elems []domain.Element) []string {
	ids := make([]string, len(elems))
	for i, e := range elems {
		ids[i] = e.ID
	}
	slices.Sort(ids)
	return ids
}

// AssertSortedResult checks that res holds a sorted permutation of input and
// a well formed step log: full snapshots, monotone counters and a final step
// marking every index sorted with the result's stats.
func AssertSortedResult(t testing.TB, input []domain.Element, res domain.Result) {
	t.Helper()
	n := len(input)

	final := domain.Values(res.Final)
	assert.True(t, slices.IsSorted(final), "final not sorted: %v", final)
	want := slices.Clone(domain.Values(input))
	slices.Sort(want)
	assert.Equal(t, want, final)
	assert.Equal(t, SortedIDs(input), SortedIDs(res.Final))

	require.NotEmpty(t, res.Steps)
	prev := domain.Stats{}
	for i, step := range res.Steps {
		require.Len(t, step.Array, n, "step %d", i)
		assert.GreaterOrEqual(t, step.Stats.Comparisons, prev.Comparisons, "step %d", i)
		assert.GreaterOrEqual(t, step.Stats.Swaps, prev.Swaps, "step %d", i)
		prev = step.Stats
	}

	last, ok := res.LastStep()
	require.True(t, ok)
	require.Len(t, last.Sorted, n)
	for i, idx := range last.Sorted {
		assert.Equal(t, i, idx)
	}
	for _, e := range last.Array {
		assert.Equal(t, domain.TagSorted, e.State)
	}
	assert.Equal(t, res.Stats, last.Stats)
}
