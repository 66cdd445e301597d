package domain

// AlgorithmID identifies one of the algorithms in the catalog.
type AlgorithmID string

const (
	AlgorithmBubble     AlgorithmID = "bubble"
	AlgorithmSelection  AlgorithmID = "selection"
	AlgorithmInsertion  AlgorithmID = "insertion"
	AlgorithmMerge      AlgorithmID = "merge"
	AlgorithmQuick      AlgorithmID = "quick"
	AlgorithmHeap       AlgorithmID = "heap"
	AlgorithmCounting   AlgorithmID = "counting"
	AlgorithmRadix      AlgorithmID = "radix"
	AlgorithmBucket     AlgorithmID = "bucket"
	AlgorithmShell      AlgorithmID = "shell"
	AlgorithmComb       AlgorithmID = "comb"
	AlgorithmGnome      AlgorithmID = "gnome"
	AlgorithmOddEven    AlgorithmID = "oddeven"
	AlgorithmCycle      AlgorithmID = "cycle"
	AlgorithmBitonic    AlgorithmID = "bitonic"
	AlgorithmPigeonhole AlgorithmID = "pigeonhole"
	AlgorithmPancake    AlgorithmID = "pancake"
	AlgorithmStooge     AlgorithmID = "stooge"
	AlgorithmCocktail   AlgorithmID = "cocktail"
	AlgorithmBogo       AlgorithmID = "bogo"
)

// DefaultAlgorithm is used whenever an unknown identifier is requested.
const DefaultAlgorithm = AlgorithmBubble

// Category groups algorithms in the catalog.
type Category string

const (
	CategoryElementary    Category = "elementary"
	CategoryDivideConquer Category = "divide-conquer"
	CategoryLinear        Category = "linear"
	CategoryVariants      Category = "variants"
	CategoryExotic        Category = "exotic"
)

// Categories lists the categories in display order.
var Categories = []Category{
	CategoryElementary,
	CategoryDivideConquer,
	CategoryLinear,
	CategoryVariants,
	CategoryExotic,
}

// Descriptor is the static catalog entry of an algorithm. Pure metadata.
type Descriptor struct {
	ID              AlgorithmID `json:"id" yaml:"id"`
	Name            string      `json:"name" yaml:"name"`
	Description     string      `json:"description" yaml:"description"`
	TimeComplexity  string      `json:"time_complexity" yaml:"time_complexity"`
	SpaceComplexity string      `json:"space_complexity" yaml:"space_complexity"`
	Category        Category    `json:"category" yaml:"category"`
}
