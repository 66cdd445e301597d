package domain

// Step is an immutable snapshot taken at one instant of a sort.
// Every step carries its own full copy of the array and the stats, so a
// consumer may render any step without replaying the ones before it.
type Step struct {
	Array     []Element `json:"array"`
	Comparing []int     `json:"comparing,omitempty"`
	Swapping  []int     `json:"swapping,omitempty"`
	Pivot     *int      `json:"pivot,omitempty"`
	Sorted    []int     `json:"sorted,omitempty"`
	Stats     Stats     `json:"stats"`
}

// Result is the complete output of one engine run.
type Result struct {
	// Algorithm is the algorithm that actually ran.
	Algorithm AlgorithmID `json:"algorithm"`
	// Requested is the identifier the caller asked for.
	Requested string `json:"requested"`
	// Fallback is true when Requested was unknown and Algorithm is the default.
	Fallback bool      `json:"fallback,omitempty"`
	Final    []Element `json:"final"`
	Steps    []Step    `json:"steps,omitempty"`
	Stats    Stats     `json:"stats"`
}

// LastStep returns the final step of the log, if any.
func (r *Result) LastStep() (Step, bool) {
	if len(r.Steps) == 0 {
		return Step{}, false
	}
	return r.Steps[len(r.Steps)-1], true
}
