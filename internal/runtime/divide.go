package runtime

import "github.com/aretw0/sortscope/pkg/domain"

// Merge splits at the midpoint and merges stably, preferring the left run on ties.
func Merge(s *Sorter) {
	s.setComplexity("O(n log n)", "O(n)")
	s.mergeSort(0, s.Len()-1)
	s.finish()
}

func (s *Sorter) mergeSort(left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	s.mergeSort(left, mid)
	s.mergeSort(mid+1, right)
	s.merge(left, mid, right)
}

// merge counts one comparison per merge step and one swap per written element.
func (s *Sorter) merge(left, mid, right int) {
	leftRun := domain.CloneElements(s.arr[left : mid+1])
	rightRun := domain.CloneElements(s.arr[mid+1 : right+1])

	i, j, k := 0, 0, left
	for i < len(leftRun) && j < len(rightRun) {
		s.comparing(left+i, mid+1+j)
		s.stats.Comparisons++

		if leftRun[i].Value <= rightRun[j].Value {
			s.write(k, leftRun[i])
			i++
		} else {
			s.write(k, rightRun[j])
			j++
		}
		k++
	}

	for ; i < len(leftRun); i, k = i+1, k+1 {
		s.write(k, leftRun[i])
	}
	for ; j < len(rightRun); j, k = j+1, k+1 {
		s.write(k, rightRun[j])
	}

	s.swapping(indexRange(left, right+1)...)
}

// Quick uses the Lomuto scheme with the last element of the range as pivot.
func Quick(s *Sorter) {
	s.setComplexity("O(n log n)", "O(log n)")
	s.quickSort(0, s.Len()-1)
	s.finish()
}

func (s *Sorter) quickSort(low, high int) {
	if low >= high {
		return
	}
	p := s.partition(low, high)
	s.quickSort(low, p-1)
	s.quickSort(p+1, high)
}

func (s *Sorter) partition(low, high int) int {
	s.Record(nil, nil, high, nil)

	i := low - 1
	for j := low; j < high; j++ {
		s.Record([]int{j, high}, nil, high, nil)
		if s.Compare(j, high) < 0 {
			i++
			s.Record(nil, []int{i, j}, high, nil)
			s.Swap(i, j)
		}
	}

	s.swapping(i+1, high)
	s.Swap(i+1, high)
	return i + 1
}

// Heap builds a max-heap and repeatedly moves the root behind the heap.
func Heap(s *Sorter) {
	s.setComplexity("O(n log n)", "O(1)")
	n := s.Len()

	for i := n/2 - 1; i >= 0; i-- {
		s.heapify(n, i)
	}

	for i := n - 1; i > 0; i-- {
		s.swapping(0, i)
		s.Swap(0, i)
		s.markSorted(indexRange(i, n)...)
		s.heapify(i, 0)
	}

	s.finish()
}

func (s *Sorter) heapify(n, i int) {
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n {
			s.comparing(left, largest)
			if s.Compare(left, largest) > 0 {
				largest = left
			}
		}
		if right < n {
			s.comparing(right, largest)
			if s.Compare(right, largest) > 0 {
				largest = right
			}
		}

		if largest == i {
			return
		}
		s.swapping(i, largest)
		s.Swap(i, largest)
		i = largest
	}
}
