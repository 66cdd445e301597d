package domain

// Stats holds the running counters of a single run.
// Counters only ever grow; the complexity labels are set once when the
// algorithm starts and are static annotations, not measurements.
type Stats struct {
	Comparisons     int    `json:"comparisons"`
	Swaps           int    `json:"swaps"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
}
