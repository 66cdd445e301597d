package runtime

// Bubble compares adjacent pairs left to right, stopping early after a
// pass without swaps.
func Bubble(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	n := s.Len()

	for i := 0; i < n-1; i++ {
		swapped := false

		for j := 0; j < n-i-1; j++ {
			s.comparing(j, j+1)
			if s.Compare(j, j+1) > 0 {
				s.swapping(j, j+1)
				s.Swap(j, j+1)
				swapped = true
			}
		}

		s.markSorted(n - i - 1)

		if !swapped {
			break
		}
	}

	s.finish()
}

// Selection picks the minimum of the unsorted suffix (strict <) and swaps it
// into place only if it moved.
func Selection(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	n := s.Len()

	for i := 0; i < n-1; i++ {
		minIdx := i

		for j := i + 1; j < n; j++ {
			s.comparing(minIdx, j)
			if s.Compare(j, minIdx) < 0 {
				minIdx = j
			}
		}

		if minIdx != i {
			s.swapping(i, minIdx)
			s.Swap(i, minIdx)
		}

		s.markPrefixSorted(i + 1)
	}

	s.finish()
}

// Insertion shifts larger elements right one at a time; every shift counts
// as a swap and the key is written once the shifting stops.
func Insertion(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	n := s.Len()

	for i := 1; i < n; i++ {
		key := s.arr[i]
		j := i - 1

		s.comparing(i)

		for j >= 0 && s.CompareTo(j, key.Value) > 0 {
			s.comparing(j, j+1)
			s.write(j+1, s.arr[j])
			j--
		}

		// The key write itself is not a shift.
		s.arr[j+1] = key
		s.markPrefixSorted(i + 1)
	}

	s.finish()
}
