package domain

// StepDiff represents the changes between two consecutive steps.
// It is designed to be serialized to JSON for partial updates on the client.
type StepDiff struct {
	// Index is the position of the newer step in the log.
	Index int `json:"index"`

	// Changed holds only the positions whose element (value, id or tag) changed.
	Changed map[int]Element `json:"changed,omitempty"`

	Comparing []int `json:"comparing,omitempty"`
	Swapping  []int `json:"swapping,omitempty"`
	Pivot     *int  `json:"pivot,omitempty"`
	Sorted    []int `json:"sorted,omitempty"`

	// Stats is only present when a counter moved.
	Stats *Stats `json:"stats,omitempty"`
}

// Diff calculates the difference between prev and next.
// If prev is nil, it returns a diff representing the entire next step (initial load).
func Diff(index int, prev, next *Step) *StepDiff {
	if next == nil {
		return nil
	}

	diff := &StepDiff{
		Index:     index,
		Comparing: next.Comparing,
		Swapping:  next.Swapping,
		Pivot:     next.Pivot,
		Sorted:    next.Sorted,
	}

	diff.Changed = diffArray(prev, next)

	if prev == nil || prev.Stats != next.Stats {
		stats := next.Stats
		diff.Stats = &stats
	}

	return diff
}

func diffArray(prev, next *Step) map[int]Element {
	delta := make(map[int]Element)

	if prev == nil || len(prev.Array) != len(next.Array) {
		for i, e := range next.Array {
			delta[i] = e
		}
	} else {
		for i, e := range next.Array {
			if prev.Array[i] != e {
				delta[i] = e
			}
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}

// IsEmpty checks if the diff carries no array or stats change.
func (d *StepDiff) IsEmpty() bool {
	return len(d.Changed) == 0 && d.Stats == nil
}

// Apply patches arr in place with the diff's changed positions and returns it.
// A nil or short arr is grown to fit.
func (d *StepDiff) Apply(arr []Element) []Element {
	for i, e := range d.Changed {
		for len(arr) <= i {
			arr = append(arr, Element{})
		}
		arr[i] = e
	}
	return arr
}
