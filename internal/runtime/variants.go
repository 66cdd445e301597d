package runtime

// Shell runs a gapped insertion sort for gaps n/2, n/4, ..., 1.
func Shell(s *Sorter) {
	s.setComplexity("O(n log n)", "O(1)")
	n := s.Len()

	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			temp := s.arr[i]
			j := i

			s.comparing(i)

			for j >= gap && s.CompareTo(j-gap, temp.Value) > 0 {
				s.comparing(j-gap, j)
				s.write(j, s.arr[j-gap])
				j -= gap
			}

			s.arr[j] = temp
			if j != i {
				s.swapping(j, i)
			}
		}
	}

	s.finish()
}

const combShrink = 1.3

// Comb is bubble sort over a gap that shrinks by 1.3 until it reaches 1,
// then keeps making gap-1 passes until one is clean.
func Comb(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	n := s.Len()
	gap := n
	sorted := false

	for !sorted {
		gap = int(float64(gap) / combShrink)
		if gap <= 1 {
			gap = 1
			sorted = true
		}

		for i := 0; i+gap < n; i++ {
			s.comparing(i, i+gap)
			if s.Compare(i, i+gap) > 0 {
				s.swapping(i, i+gap)
				s.Swap(i, i+gap)
				sorted = false
			}
		}
	}

	s.finish()
}

// Gnome walks forward while pairs are ordered and steps back after each swap.
func Gnome(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	n := s.Len()
	index := 0

	for index < n {
		if index == 0 {
			index++
			continue
		}

		s.comparing(index-1, index)
		if s.Compare(index-1, index) <= 0 {
			index++
		} else {
			s.swapping(index-1, index)
			s.Swap(index-1, index)
			index--
		}
	}

	s.finish()
}

// OddEven alternates an odd-indexed phase and an even-indexed phase until a
// full pass makes no swap.
func OddEven(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	n := s.Len()
	sorted := false

	phase := func(start int) bool {
		clean := true
		for i := start; i < n-1; i += 2 {
			s.comparing(i, i+1)
			if s.Compare(i, i+1) > 0 {
				s.swapping(i, i+1)
				s.Swap(i, i+1)
				clean = false
			}
		}
		return clean
	}

	for !sorted {
		odd := phase(1)
		even := phase(0)
		sorted = odd && even
	}

	s.finish()
}

// Cycle places each element directly into its final position, writing each
// value at most once. The held item lives outside the array between writes.
func Cycle(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	n := s.Len()

	for cycleStart := 0; cycleStart < n-1; cycleStart++ {
		item := s.arr[cycleStart]
		pos := s.cyclePosition(cycleStart, item.Value)

		if pos == cycleStart {
			continue
		}

		for item.Value == s.value(pos) {
			pos++
		}

		s.swapping(cycleStart, pos)
		item, s.arr[pos] = s.arr[pos], item
		s.stats.Swaps++

		for pos != cycleStart {
			pos = s.cyclePosition(cycleStart, item.Value)

			for pos != cycleStart && item.Value == s.value(pos) {
				pos++
			}

			if pos == cycleStart {
				s.write(cycleStart, item)
				s.swapping(cycleStart)
				break
			}

			s.swapping(cycleStart, pos)
			item, s.arr[pos] = s.arr[pos], item
			s.stats.Swaps++
		}
	}

	s.finish()
}

// cyclePosition counts the elements right of cycleStart that are strictly
// smaller than v and returns the resulting target index.
func (s *Sorter) cyclePosition(cycleStart, v int) int {
	pos := cycleStart
	for i := cycleStart + 1; i < s.Len(); i++ {
		s.comparing(pos, i)
		if s.CompareTo(i, v) < 0 {
			pos++
		}
	}
	return pos
}

// Cocktail is a bidirectional bubble sort. The forward pass shrinks the
// window from the end and the backward pass from the start. A clean forward
// pass ends the sort, and so does a clean backward pass.
func Cocktail(s *Sorter) {
	s.setComplexity("O(n²)", "O(1)")
	start, end := 0, s.Len()-1

	for swapped := true; swapped; {
		swapped = false
		for i := start; i < end; i++ {
			s.comparing(i, i+1)
			if s.Compare(i, i+1) > 0 {
				s.swapping(i, i+1)
				s.Swap(i, i+1)
				swapped = true
			}
		}

		if !swapped {
			break
		}

		end--
		s.markSorted(end + 1)
		swapped = false

		for i := end; i > start; i-- {
			s.comparing(i-1, i)
			if s.Compare(i-1, i) > 0 {
				s.swapping(i-1, i)
				s.Swap(i-1, i)
				swapped = true
			}
		}

		start++
		s.markSorted(start - 1)
	}

	s.finish()
}
