package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sortscope/internal/testutils"
	"github.com/aretw0/sortscope/pkg/domain"
)

func tagsOf(step domain.Step) []domain.Tag {
	out := make([]domain.Tag, len(step.Array))
	for i, e := range step.Array {
		out[i] = e.State
	}
	return out
}

func TestSorter_RecordTagPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		comparing []int
		swapping  []int
		pivot     int
		sorted    []int
		want      []domain.Tag
	}{
		{
			name:  "Nothing Highlighted",
			pivot: -1,
			want: []domain.Tag{domain.TagDefault, domain.TagDefault, domain.TagDefault, domain.TagDefault},
		},
		{
			name:      "Sorted Beats Everything",
			comparing: []int{0},
			swapping:  []int{0},
			pivot:     0,
			sorted:    []int{0},
			want:      []domain.Tag{domain.TagSorted, domain.TagDefault, domain.TagDefault, domain.TagDefault},
		},
		{
			name:      "Pivot Beats Swapping And Comparing",
			comparing: []int{1, 3},
			swapping:  []int{3},
			pivot:     3,
			want:      []domain.Tag{domain.TagDefault, domain.TagComparing, domain.TagDefault, domain.TagPivot},
		},
		{
			name:      "Swapping Beats Comparing",
			comparing: []int{0, 1},
			swapping:  []int{1, 2},
			pivot:     -1,
			want:      []domain.Tag{domain.TagComparing, domain.TagSwapping, domain.TagSwapping, domain.TagDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSorter(testutils.Elements(4, 3, 2, 1), nil, nil)
			s.Record(tt.comparing, tt.swapping, tt.pivot, tt.sorted)

			require.Len(t, s.Steps(), 1)
			step := s.Steps()[0]
			assert.Equal(t, tt.want, tagsOf(step))
			if tt.pivot >= 0 {
				require.NotNil(t, step.Pivot)
				assert.Equal(t, tt.pivot, *step.Pivot)
			} else {
				assert.Nil(t, step.Pivot)
			}
		})
	}
}

func TestSorter_SnapshotsAreImmutable(t *testing.T) {
	s := NewSorter(testutils.Elements(2, 1), nil, nil)
	comparing := []int{0, 1}

	s.Record(comparing, nil, -1, nil)
	s.Swap(0, 1)
	comparing[0] = 99
	s.Record(nil, []int{0, 1}, -1, nil)

	steps := s.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, []int{2, 1}, domain.Values(steps[0].Array))
	assert.Equal(t, []int{0, 1}, steps[0].Comparing)
	assert.Equal(t, 0, steps[0].Stats.Swaps)

	assert.Equal(t, []int{1, 2}, domain.Values(steps[1].Array))
	assert.Equal(t, 1, steps[1].Stats.Swaps)
}

func TestSorter_DoesNotAliasInput(t *testing.T) {
	input := testutils.Elements(2, 1)
	input[0].State = domain.TagSorted

	s := NewSorter(input, nil, nil)
	s.Swap(0, 1)

	assert.Equal(t, 2, input[0].Value)
	assert.Equal(t, domain.TagSorted, input[0].State)
	assert.Equal(t, domain.TagDefault, s.Array()[1].State)
}

func TestSorter_Primitives(t *testing.T) {
	s := NewSorter(testutils.Elements(5, 3, 5), nil, nil)

	assert.Equal(t, 1, s.Compare(0, 1))
	assert.Equal(t, -1, s.Compare(1, 0))
	assert.Equal(t, 0, s.Compare(0, 2))
	assert.Equal(t, -1, s.CompareTo(1, 4))
	assert.Equal(t, 4, s.Stats().Comparisons)

	s.Swap(0, 1)
	assert.Equal(t, 1, s.Stats().Swaps)
	assert.Equal(t, 3, s.value(0))
	assert.Equal(t, 5, s.value(1))
	assert.Empty(t, s.Steps())
}
