// Package generator builds the arrays fed to the engine: random arrays the
// way the visualizer seeds them, shuffles, and parsing of user supplied values.
package generator

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/aretw0/sortscope/pkg/domain"
)

const (
	// DefaultMinValue and DefaultMaxValue bound generated values (inclusive).
	DefaultMinValue = 10
	DefaultMaxValue = 309
)

// ElementID returns the stable identity assigned to the i-th generated element.
func ElementID(i int) string {
	return fmt.Sprintf("element-%d", i)
}

// FromValues wraps plain values into elements with generated IDs and default tags.
func FromValues(values []int) []domain.Element {
	out := make([]domain.Element, len(values))
	for i, v := range values {
		out[i] = domain.Element{Value: v, ID: ElementID(i), State: domain.TagDefault}
	}
	return out
}

// Random generates size elements with values uniform in [lo, hi].
func Random(rng *rand.Rand, size, lo, hi int) []domain.Element {
	if hi < lo {
		lo, hi = hi, lo
	}
	values := make([]int, size)
	for i := range values {
		values[i] = lo + rng.IntN(hi-lo+1)
	}
	return FromValues(values)
}

// Shuffle returns a Fisher–Yates shuffled copy of elems with every tag reset.
func Shuffle(rng *rand.Rand, elems []domain.Element) []domain.Element {
	out := domain.ResetTags(elems)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand returns a generator for seed, or a randomly seeded one when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Limits bounds user supplied input.
type Limits struct {
	MaxElements int
	MinValue    int
	MaxValue    int
}

// MaxElements caps user supplied arrays. Every step stores a full snapshot,
// so the step log of the cubic algorithms grows fast beyond this.
const MaxElements = 100

// DefaultLimits keeps counting/pigeonhole allocations and step logs bounded.
var DefaultLimits = Limits{
	MaxElements: MaxElements,
	MinValue:    -1_000_000,
	MaxValue:    1_000_000,
}

// Check validates values against the limits.
func (l Limits) Check(values []int) error {
	if l.MaxElements > 0 && len(values) > l.MaxElements {
		return fmt.Errorf("%w: %d > %d", domain.ErrTooManyElements, len(values), l.MaxElements)
	}
	for i, v := range values {
		if v < l.MinValue || v > l.MaxValue {
			return fmt.Errorf("%w: value %d at position %d outside [%d, %d]", domain.ErrInvalidValues, v, i, l.MinValue, l.MaxValue)
		}
	}
	return nil
}

// ParseValues parses a comma or whitespace separated list of integers.
// An empty string yields an empty slice.
func ParseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == ';'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidValues, f)
		}
		out = append(out, v)
	}
	return out, nil
}
