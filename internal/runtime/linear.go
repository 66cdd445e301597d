package runtime

import (
	"math"
	"strconv"

	"github.com/aretw0/sortscope/pkg/domain"
)

// The non-comparison sorts below report bucketing/placement operations in
// the comparisons counter rather than value comparisons.

// Counting tallies occurrences per value and rebuilds the array stably,
// keeping each element's identity.
func Counting(s *Sorter) {
	s.setComplexity("O(n + k)", "O(k)")
	n := s.Len()
	if n == 0 {
		s.finish()
		return
	}

	lo, hi := s.minMax()
	count := make([]int, hi-lo+1)

	for i := 0; i < n; i++ {
		s.comparing(i)
		count[s.value(i)-lo]++
		s.countPlacement()
	}

	for v := 1; v < len(count); v++ {
		count[v] += count[v-1]
	}

	output := make([]domain.Element, n)
	for i := n - 1; i >= 0; i-- {
		slot := s.value(i) - lo
		count[slot]--
		output[count[slot]] = s.arr[i]
	}

	for i := 0; i < n; i++ {
		s.write(i, output[i])
		s.swapping(i)
	}

	s.finish()
}

// Radix runs a stable counting pass per decimal digit, least significant first.
// Inputs with negative values are shifted by the minimum so digits stay non-negative.
func Radix(s *Sorter) {
	s.setComplexity("O(d × (n + k))", "O(n + k)")
	n := s.Len()
	if n == 0 {
		s.finish()
		return
	}

	lo, hi := s.minMax()
	offset := 0
	if lo < 0 {
		offset = -lo
	}
	digits := len(strconv.Itoa(hi + offset))

	for d, exp := 0, 1; d < digits; d, exp = d+1, exp*10 {
		s.radixPass(exp, offset)
	}

	s.finish()
}

func (s *Sorter) radixPass(exp, offset int) {
	n := s.Len()
	output := make([]domain.Element, n)
	var count [10]int

	digit := func(i int) int {
		return ((s.value(i) + offset) / exp) % 10
	}

	for i := 0; i < n; i++ {
		count[digit(i)]++
		s.comparing(i)
		s.countPlacement()
	}

	for d := 1; d < 10; d++ {
		count[d] += count[d-1]
	}

	for i := n - 1; i >= 0; i-- {
		d := digit(i)
		output[count[d]-1] = s.arr[i]
		count[d]--
		s.swapping(i)
		s.stats.Swaps++
	}

	copy(s.arr, output)
}

// Bucket spreads values over floor(sqrt(n)) equal-width buckets, insertion
// sorts each bucket and concatenates them back.
func Bucket(s *Sorter) {
	s.setComplexity("O(n + k)", "O(n × k)")
	n := s.Len()
	if n == 0 {
		s.finish()
		return
	}

	lo, hi := s.minMax()
	bucketCount := int(math.Sqrt(float64(n)))
	bucketSize := (hi - lo + bucketCount) / bucketCount // ceil((hi-lo+1)/bucketCount)

	buckets := make([][]domain.Element, bucketCount)
	for i := 0; i < n; i++ {
		b := min((s.value(i)-lo)/bucketSize, bucketCount-1)
		buckets[b] = append(buckets[b], s.arr[i])
		s.comparing(i)
		s.countPlacement()
	}

	index := 0
	for _, bucket := range buckets {
		s.insertionSortBucket(bucket)
		for _, e := range bucket {
			s.write(index, e)
			s.swapping(index)
			index++
		}
	}

	s.finish()
}

// insertionSortBucket sorts a bucket off-array. Only shifts are counted, each
// as one comparison and one swap.
func (s *Sorter) insertionSortBucket(bucket []domain.Element) {
	for i := 1; i < len(bucket); i++ {
		key := bucket[i]
		j := i - 1
		for j >= 0 && bucket[j].Value > key.Value {
			bucket[j+1] = bucket[j]
			s.stats.Comparisons++
			s.stats.Swaps++
			j--
		}
		bucket[j+1] = key
	}
}

// Pigeonhole drops every element into the hole for its value and reads the
// holes back in order.
func Pigeonhole(s *Sorter) {
	s.setComplexity("O(n + range)", "O(range)")
	n := s.Len()
	if n == 0 {
		s.finish()
		return
	}

	lo, hi := s.minMax()
	holes := make([][]domain.Element, hi-lo+1)

	for i := 0; i < n; i++ {
		h := s.value(i) - lo
		holes[h] = append(holes[h], s.arr[i])
		s.comparing(i)
		s.countPlacement()
	}

	index := 0
	for _, hole := range holes {
		for _, e := range hole {
			s.write(index, e)
			s.swapping(index)
			index++
		}
	}

	s.finish()
}
