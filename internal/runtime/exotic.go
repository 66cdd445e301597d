package runtime

// BogoMaxIterations bounds the number of shuffles a bogo run may perform.
const BogoMaxIterations = 1000

// Bogo shuffles with Fisher–Yates until the array is sorted or the iteration
// cap is reached. A capped run finishes with a deterministic insertion pass so
// the final array is always sorted; its comparisons and swaps are counted.
func Bogo(s *Sorter) {
	s.setComplexity("O((n+1)!)", "O(1)")

	iterations := 0
	for !s.isSorted() && iterations < BogoMaxIterations {
		s.shuffle()
		s.Record(nil, nil, -1, nil)
		iterations++
	}

	if !s.isSorted() {
		s.logger.Warn("bogo iteration cap reached, settling deterministically",
			"iterations", iterations,
			"size", s.Len(),
		)
		s.settle()
	}

	s.finish()
}

func (s *Sorter) shuffle() {
	for i := s.Len() - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.Swap(i, j)
	}
}

// settle is an adjacent-swap insertion sort.
func (s *Sorter) settle() {
	for i := 1; i < s.Len(); i++ {
		for j := i; j > 0; j-- {
			s.comparing(j-1, j)
			if s.Compare(j-1, j) <= 0 {
				break
			}
			s.swapping(j-1, j)
			s.Swap(j-1, j)
		}
	}
}

// Bitonic runs the bitonic network. Lengths that are not a power of two use
// the generalized network, which merges over the greatest power of two below
// the range length instead of the exact half.
func Bitonic(s *Sorter) {
	s.setComplexity("O(n log² n)", "O(log² n)")
	s.bitonicSort(0, s.Len(), true)
	s.finish()
}

func (s *Sorter) bitonicSort(lo, cnt int, ascending bool) {
	if cnt <= 1 {
		return
	}
	m := cnt / 2
	s.bitonicSort(lo, m, !ascending)
	s.bitonicSort(lo+m, cnt-m, ascending)
	s.bitonicMerge(lo, cnt, ascending)
}

func (s *Sorter) bitonicMerge(lo, cnt int, ascending bool) {
	if cnt <= 1 {
		return
	}
	m := greatestPowerOfTwoBelow(cnt)
	for i := lo; i < lo+cnt-m; i++ {
		s.comparing(i, i+m)
		c := s.Compare(i, i+m)
		if (ascending && c > 0) || (!ascending && c < 0) {
			s.swapping(i, i+m)
			s.Swap(i, i+m)
		}
	}
	s.bitonicMerge(lo, m, ascending)
	s.bitonicMerge(lo+m, cnt-m, ascending)
}

func greatestPowerOfTwoBelow(n int) int {
	k := 1
	for k < n {
		k <<= 1
	}
	return k >> 1
}

// Pancake repeatedly flips the maximum of the unsorted prefix to the front
// and then to the end of the prefix.
func Pancake(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")

	for size := s.Len(); size > 1; size-- {
		maxIdx := 0
		for i := 1; i < size; i++ {
			s.comparing(maxIdx, i)
			if s.Compare(i, maxIdx) > 0 {
				maxIdx = i
			}
		}

		if maxIdx != 0 {
			s.flip(maxIdx)
		}
		s.flip(size - 1)

		s.markSorted(size - 1)
	}

	s.finish()
}

// flip reverses [0, k] with swaps from both ends inward.
func (s *Sorter) flip(k int) {
	for start := 0; start < k; start, k = start+1, k-1 {
		s.swapping(start, k)
		s.Swap(start, k)
	}
}

// Stooge swaps the ends when out of order, then recursively sorts the first
// two thirds, the last two thirds and the first two thirds again.
func Stooge(s *Sorter) {
	s.setComplexity("O(n^2.7)", "O(n)")
	s.stoogeSort(0, s.Len()-1)
	s.finish()
}

func (s *Sorter) stoogeSort(l, h int) {
	if l >= h {
		return
	}

	s.comparing(l, h)
	if s.Compare(l, h) > 0 {
		s.swapping(l, h)
		s.Swap(l, h)
	}

	if h-l+1 > 2 {
		t := (h - l + 1) / 3
		s.stoogeSort(l, h-t)
		s.stoogeSort(l+t, h)
		s.stoogeSort(l, h-t)
	}
}
