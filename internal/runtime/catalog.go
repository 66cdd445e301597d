package runtime

import "github.com/aretw0/sortscope/pkg/domain"

// algorithm binds a catalog descriptor to its body.
type algorithm struct {
	domain.Descriptor
	body func(*Sorter)
}

// catalog lists every algorithm in display order.
var catalog = []algorithm{
	{domain.Descriptor{
		ID:              domain.AlgorithmBubble,
		Name:            "Bubble Sort",
		Description:     "Repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryElementary,
	}, Bubble},
	{domain.Descriptor{
		ID:              domain.AlgorithmSelection,
		Name:            "Selection Sort",
		Description:     "Divides the list into sorted and unsorted regions, repeatedly selecting the smallest element from the unsorted region.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryElementary,
	}, Selection},
	{domain.Descriptor{
		ID:              domain.AlgorithmInsertion,
		Name:            "Insertion Sort",
		Description:     "Builds the sorted array one element at a time by repeatedly inserting elements into their correct position.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryElementary,
	}, Insertion},
	{domain.Descriptor{
		ID:              domain.AlgorithmMerge,
		Name:            "Merge Sort",
		Description:     "Divides the array into halves, sorts them separately, and then merges the sorted halves.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(n)",
		Category:        domain.CategoryDivideConquer,
	}, Merge},
	{domain.Descriptor{
		ID:              domain.AlgorithmQuick,
		Name:            "Quick Sort",
		Description:     "Selects a pivot element and partitions the array around it, then recursively sorts the subarrays.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(log n)",
		Category:        domain.CategoryDivideConquer,
	}, Quick},
	{domain.Descriptor{
		ID:              domain.AlgorithmHeap,
		Name:            "Heap Sort",
		Description:     "Builds a max heap from the array and repeatedly extracts the maximum element.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryDivideConquer,
	}, Heap},
	{domain.Descriptor{
		ID:              domain.AlgorithmCounting,
		Name:            "Counting Sort",
		Description:     "Non-comparison based sorting that counts occurrences of each distinct element.",
		TimeComplexity:  "O(n + k)",
		SpaceComplexity: "O(k)",
		Category:        domain.CategoryLinear,
	}, Counting},
	{domain.Descriptor{
		ID:              domain.AlgorithmRadix,
		Name:            "Radix Sort",
		Description:     "Non-comparison based sorting that processes digits from least to most significant.",
		TimeComplexity:  "O(d × (n + k))",
		SpaceComplexity: "O(n + k)",
		Category:        domain.CategoryLinear,
	}, Radix},
	{domain.Descriptor{
		ID:              domain.AlgorithmBucket,
		Name:            "Bucket Sort",
		Description:     "Distributes elements into buckets, sorts each bucket, then concatenates results.",
		TimeComplexity:  "O(n + k)",
		SpaceComplexity: "O(n × k)",
		Category:        domain.CategoryLinear,
	}, Bucket},
	{domain.Descriptor{
		ID:              domain.AlgorithmShell,
		Name:            "Shell Sort",
		Description:     "Generalization of insertion sort that allows exchange of far apart elements.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryVariants,
	}, Shell},
	{domain.Descriptor{
		ID:              domain.AlgorithmComb,
		Name:            "Comb Sort",
		Description:     "Improvement over bubble sort that eliminates small values near the end.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryVariants,
	}, Comb},
	{domain.Descriptor{
		ID:              domain.AlgorithmGnome,
		Name:            "Gnome Sort",
		Description:     "Simple sorting algorithm similar to insertion sort but moving elements to their proper place by swaps.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryVariants,
	}, Gnome},
	{domain.Descriptor{
		ID:              domain.AlgorithmOddEven,
		Name:            "Odd-Even Sort",
		Description:     "Parallel sorting algorithm that compares odd and even indexed pairs alternately.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryVariants,
	}, OddEven},
	{domain.Descriptor{
		ID:              domain.AlgorithmCycle,
		Name:            "Cycle Sort",
		Description:     "In-place sorting algorithm that minimizes the number of writes to memory.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryVariants,
	}, Cycle},
	{domain.Descriptor{
		ID:              domain.AlgorithmBitonic,
		Name:            "Bitonic Sort",
		Description:     "Parallel sorting algorithm that works well on parallel machines.",
		TimeComplexity:  "O(n log² n)",
		SpaceComplexity: "O(log² n)",
		Category:        domain.CategoryExotic,
	}, Bitonic},
	{domain.Descriptor{
		ID:              domain.AlgorithmPigeonhole,
		Name:            "Pigeonhole Sort",
		Description:     "Suitable for sorting lists where the number of elements is close to the range of values.",
		TimeComplexity:  "O(n + range)",
		SpaceComplexity: "O(range)",
		Category:        domain.CategoryExotic,
	}, Pigeonhole},
	{domain.Descriptor{
		ID:              domain.AlgorithmPancake,
		Name:            "Pancake Sort",
		Description:     "Sorting algorithm that can only flip elements from one end, like flipping pancakes!",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryExotic,
	}, Pancake},
	{domain.Descriptor{
		ID:              domain.AlgorithmStooge,
		Name:            "Stooge Sort",
		Description:     "Recursive sorting algorithm with poor time complexity but interesting approach.",
		TimeComplexity:  "O(n^2.7)",
		SpaceComplexity: "O(n)",
		Category:        domain.CategoryExotic,
	}, Stooge},
	{domain.Descriptor{
		ID:              domain.AlgorithmCocktail,
		Name:            "Cocktail Shaker Sort",
		Description:     "A variation of bubble sort that sorts in both directions on each pass through the list.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryVariants,
	}, Cocktail},
	{domain.Descriptor{
		ID:              domain.AlgorithmBogo,
		Name:            "Bogo Sort",
		Description:     "Randomly shuffles the array until it happens to be sorted. Highly inefficient but amusing!",
		TimeComplexity:  "O((n+1)!)",
		SpaceComplexity: "O(1)",
		Category:        domain.CategoryExotic,
	}, Bogo},
}
