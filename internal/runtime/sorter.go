package runtime

import (
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/sortscope/pkg/domain"
)

// Sorter is the per-run working state shared by every algorithm body.
// It owns a private copy of the input, the append-only step log and the
// running stats. A Sorter is used for exactly one run.
type Sorter struct {
	arr    []domain.Element
	steps  []domain.Step
	stats  domain.Stats
	rng    *rand.Rand
	logger *slog.Logger
}

// NewSorter seeds a Sorter from a copy of input. The caller's slice is never aliased.
func NewSorter(input []domain.Element, rng *rand.Rand, logger *slog.Logger) *Sorter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sorter{
		arr:    domain.ResetTags(input),
		rng:    rng,
		logger: logger,
	}
}

// Len returns the size of the working array.
func (s *Sorter) Len() int { return len(s.arr) }

func (s *Sorter) value(i int) int { return s.arr[i].Value }

// Stats returns a copy of the running stats.
func (s *Sorter) Stats() domain.Stats { return s.stats }

// Steps returns the recorded log.
func (s *Sorter) Steps() []domain.Step { return s.steps }

// Array returns a copy of the working array with default tags.
func (s *Sorter) Array() []domain.Element { return domain.ResetTags(s.arr) }

// setComplexity fixes the static labels for the run. Called once at algorithm entry.
func (s *Sorter) setComplexity(timeC, spaceC string) {
	s.stats.TimeComplexity = timeC
	s.stats.SpaceComplexity = spaceC
}

// Record appends a snapshot of the working array. Each position gets exactly
// one tag, resolved as sorted > pivot > swapping > comparing > default.
// pivot < 0 means no pivot.
func (s *Sorter) Record(comparing, swapping []int, pivot int, sorted []int) {
	tags := make([]domain.Tag, len(s.arr))
	for i := range tags {
		tags[i] = domain.TagDefault
	}
	// Lowest precedence first so later writes win.
	for _, i := range comparing {
		tags[i] = domain.TagComparing
	}
	for _, i := range swapping {
		tags[i] = domain.TagSwapping
	}
	var pivotPtr *int
	if pivot >= 0 {
		tags[pivot] = domain.TagPivot
		p := pivot
		pivotPtr = &p
	}
	for _, i := range sorted {
		tags[i] = domain.TagSorted
	}

	snapshot := make([]domain.Element, len(s.arr))
	for i, e := range s.arr {
		e.State = tags[i]
		snapshot[i] = e
	}

	s.steps = append(s.steps, domain.Step{
		Array:     snapshot,
		Comparing: cloneIdx(comparing),
		Swapping:  cloneIdx(swapping),
		Pivot:     pivotPtr,
		Sorted:    cloneIdx(sorted),
		Stats:     s.stats,
	})
}

func (s *Sorter) comparing(idx ...int) { s.Record(idx, nil, -1, nil) }

func (s *Sorter) swapping(idx ...int) { s.Record(nil, idx, -1, nil) }

func (s *Sorter) markSorted(idx ...int) { s.Record(nil, nil, -1, idx) }

// markPrefixSorted marks positions [0, n) as sorted.
func (s *Sorter) markPrefixSorted(n int) { s.markSorted(indexRange(0, n)...) }

// finish records the closing step with every position sorted.
func (s *Sorter) finish() { s.markPrefixSorted(len(s.arr)) }

// Compare counts one comparison and returns the sign of value[i]-value[j].
func (s *Sorter) Compare(i, j int) int {
	return s.CompareTo(i, s.value(j))
}

// CompareTo counts one comparison and returns the sign of value[i]-v.
// Used where a key has been lifted out of the array.
func (s *Sorter) CompareTo(i int, v int) int {
	s.stats.Comparisons++
	return sign(s.value(i) - v)
}

// Swap exchanges positions i and j and counts one swap.
func (s *Sorter) Swap(i, j int) {
	s.arr[i], s.arr[j] = s.arr[j], s.arr[i]
	s.stats.Swaps++
}

// write stores e at i and counts it as a swap. Shifts and copies go through here.
func (s *Sorter) write(i int, e domain.Element) {
	s.arr[i] = e
	s.stats.Swaps++
}

// countPlacement counts a non-comparison bucketing operation.
// Non-comparison sorts report placement work in the comparisons counter.
func (s *Sorter) countPlacement() { s.stats.Comparisons++ }

func (s *Sorter) isSorted() bool {
	for i := 0; i+1 < len(s.arr); i++ {
		if s.value(i) > s.value(i+1) {
			return false
		}
	}
	return true
}

func (s *Sorter) minMax() (lo, hi int) {
	lo, hi = s.value(0), s.value(0)
	for _, e := range s.arr[1:] {
		lo = min(lo, e.Value)
		hi = max(hi, e.Value)
	}
	return lo, hi
}

func indexRange(from, to int) []int {
	if to <= from {
		return []int{}
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func cloneIdx(idx []int) []int {
	if idx == nil {
		return nil
	}
	out := make([]int, len(idx))
	copy(out, idx)
	return out
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}
