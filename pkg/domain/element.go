package domain

// Tag is the presentational state of an element within a single step.
// It never drives algorithm logic.
type Tag string

const (
	TagDefault   Tag = "default"
	TagComparing Tag = "comparing"
	TagSwapping  Tag = "swapping"
	TagSorted    Tag = "sorted"
	TagPivot     Tag = "pivot"
)

// Element is a single value of the array being sorted.
type Element struct {
	Value int    `json:"value"`
	ID    string `json:"id"`
	State Tag    `json:"state"`
}

// Values extracts the plain values of a slice of elements.
func Values(elems []Element) []int {
	out := make([]int, len(elems))
	for i, e := range elems {
		out[i] = e.Value
	}
	return out
}

// CloneElements returns an independent copy of elems.
func CloneElements(elems []Element) []Element {
	if elems == nil {
		return nil
	}
	out := make([]Element, len(elems))
	copy(out, elems)
	return out
}

// ResetTags returns a copy of elems with every tag set back to TagDefault.
func ResetTags(elems []Element) []Element {
	out := CloneElements(elems)
	for i := range out {
		out[i].State = TagDefault
	}
	return out
}
