package runner

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sortscope/pkg/domain"
)

func twoSteps() []domain.Step {
	pivot := 1
	return []domain.Step{
		{
			Array: []domain.Element{
				{Value: 30, ID: "element-0", State: domain.TagComparing},
				{Value: 10, ID: "element-1", State: domain.TagComparing},
			},
			Comparing: []int{0, 1},
			Stats:     domain.Stats{Comparisons: 1, TimeComplexity: "O(n²)", SpaceComplexity: "O(1)"},
		},
		{
			Array: []domain.Element{
				{Value: 10, ID: "element-1", State: domain.TagSorted},
				{Value: 30, ID: "element-0", State: domain.TagPivot},
			},
			Pivot:  &pivot,
			Sorted: []int{0},
			Stats:  domain.Stats{Comparisons: 1, Swaps: 1, TimeComplexity: "O(n²)", SpaceComplexity: "O(1)"},
		},
	}
}

func TestTextHandler_RendersFramesAndSummary(t *testing.T) {
	out := &bytes.Buffer{}
	cleared := 0
	h := NewTextHandler(out,
		WithTitle("Bubble Sort"),
		WithTextRenderer(PlainBars(10)),
		WithClear(func(io.Writer) { cleared++ }),
	)
	p := NewPlayer(WithInterval(0), WithHandler(h))

	_, err := p.Play(context.Background(), twoSteps())
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 2, cleared)
	assert.Contains(t, text, "30 |??????????\n")
	assert.Contains(t, text, "10 |???\n")
	assert.Contains(t, text, "10 |===\n")
	assert.Contains(t, text, "30 |^^^^^^^^^^\n")
	assert.Contains(t, text, "step 2/2  comparisons: 1  swaps: 1")
	assert.Contains(t, text, "Sorting complete!")
	assert.Contains(t, text, "Algorithm:   Bubble Sort")
	assert.Contains(t, text, "Time:        O(n²)")
}

func TestTextHandler_QuietOnlySummary(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(out, WithQuiet(true))

	_, err := NewPlayer(WithInterval(0), WithHandler(h)).Play(context.Background(), twoSteps())
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "|")
	assert.Contains(t, out.String(), "Swaps:       1")
}

func TestRenderBars(t *testing.T) {
	tests := []struct {
		name string
		arr  []domain.Element
		want string
	}{
		{"Empty", nil, "(empty)\n"},
		{
			"Scaled",
			[]domain.Element{{Value: 4}, {Value: 2}},
			"4 |####\n2 |##\n",
		},
		{
			"Minimum One Glyph",
			[]domain.Element{{Value: 0}, {Value: 4}},
			"0 |#\n4 |####\n",
		},
		{
			"Negative Values",
			[]domain.Element{{Value: -2}, {Value: 2}},
			"-2 |#\n 2 |####\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderBars(tt.arr, 4, func(e domain.Element, bar string) string { return bar })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONHandler_FullFrames(t *testing.T) {
	out := &bytes.Buffer{}
	_, err := NewPlayer(WithInterval(0), WithHandler(NewJSONHandler(out, false))).
		Play(context.Background(), twoSteps())
	require.NoError(t, err)

	frames := decodeFrames(t, out.String())
	require.Len(t, frames, 3)

	assert.Equal(t, FrameTypeStep, frames[0].Type)
	require.NotNil(t, frames[0].Step)
	assert.Equal(t, []int{0, 1}, frames[0].Step.Comparing)

	assert.Equal(t, FrameTypeStep, frames[1].Type)
	assert.Equal(t, 1, frames[1].Index)
	require.NotNil(t, frames[1].Step.Pivot)
	assert.Equal(t, 1, *frames[1].Step.Pivot)

	assert.Equal(t, FrameTypeDone, frames[2].Type)
	assert.True(t, frames[2].Completed)
	assert.Equal(t, 2, frames[2].Frames)
	assert.Equal(t, 1, frames[2].Stats.Swaps)
}

func TestJSONHandler_CompactDiffs(t *testing.T) {
	out := &bytes.Buffer{}
	steps := twoSteps()
	_, err := NewPlayer(WithInterval(0), WithHandler(NewJSONHandler(out, true))).
		Play(context.Background(), steps)
	require.NoError(t, err)

	frames := decodeFrames(t, out.String())
	require.Len(t, frames, 3)

	// The first frame is always complete so a consumer has a base array.
	assert.Equal(t, FrameTypeStep, frames[0].Type)
	assert.Equal(t, FrameTypeDiff, frames[1].Type)
	require.NotNil(t, frames[1].Diff)

	arr := domain.CloneElements(frames[0].Step.Array)
	arr = frames[1].Diff.Apply(arr)
	assert.Equal(t, steps[1].Array, arr)
}

func decodeFrames(t *testing.T, s string) []JSONFrame {
	t.Helper()
	var frames []JSONFrame
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		var f JSONFrame
		require.NoError(t, json.Unmarshal(sc.Bytes(), &f))
		frames = append(frames, f)
	}
	return frames
}

func TestControls_Apply(t *testing.T) {
	p := NewPlayer(WithInterval(DefaultInterval))
	c := NewControls(strings.NewReader(""), nil, p, nil)

	msg, quit := c.Apply("p\n")
	assert.Equal(t, "paused at frame 0", msg)
	assert.False(t, quit)
	assert.True(t, p.Paused())

	msg, _ = c.Apply("")
	assert.Equal(t, "playing", msg)
	assert.False(t, p.Paused())

	msg, _ = c.Apply("+")
	assert.Equal(t, "speed: 50ms", msg)
	msg, _ = c.Apply("-")
	assert.Equal(t, "speed: 100ms", msg)

	msg, _ = c.Apply("wat")
	assert.Contains(t, msg, "unknown command")

	_, quit = c.Apply("Q")
	assert.True(t, quit)
}

func TestControls_RunQuit(t *testing.T) {
	p := NewPlayer()
	out := &bytes.Buffer{}
	quitCalled := make(chan struct{})
	c := NewControls(strings.NewReader("p\nq\n"), out, p, func() { close(quitCalled) })

	require.NoError(t, c.Run(context.Background()))
	select {
	case <-quitCalled:
	case <-time.After(time.Second):
		t.Fatal("quit callback not called")
	}
	assert.Equal(t, "paused at frame 0\nstopping\n", out.String())
}

func TestControls_ReaderReleasedAfterQuit(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := NewControls(pr, nil, NewPlayer(), nil)

	go func() { _, _ = io.WriteString(pw, "q\n") }()
	require.NoError(t, c.Run(context.Background()))

	// A line typed after quit must not park the reader goroutine forever.
	go func() { _, _ = io.WriteString(pw, "p\n") }()
	select {
	case <-c.exited:
	case <-time.After(time.Second):
		t.Fatal("input goroutine still blocked after Run returned")
	}
}

func TestJSONHandler_CompactSkipsUnchangedSteps(t *testing.T) {
	out := &bytes.Buffer{}
	steps := twoSteps()
	steps = append(steps, steps[1])
	_, err := NewPlayer(WithInterval(0), WithHandler(NewJSONHandler(out, true))).
		Play(context.Background(), steps)
	require.NoError(t, err)

	frames := decodeFrames(t, out.String())
	require.Len(t, frames, 3)
	assert.Equal(t, FrameTypeDiff, frames[1].Type)
	assert.Equal(t, FrameTypeDone, frames[2].Type)
	assert.Equal(t, 3, frames[2].Frames)
}

func TestControls_RunEndsOnEOF(t *testing.T) {
	p := NewPlayer()
	c := NewControls(strings.NewReader("s"), nil, p, nil)
	assert.NoError(t, c.Run(context.Background()))
}
