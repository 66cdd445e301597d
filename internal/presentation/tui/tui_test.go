package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/runner"
)

func frame() runner.Frame {
	return runner.Frame{Total: 1, Step: domain.Step{Array: []domain.Element{
		{Value: 50, State: domain.TagComparing},
		{Value: 100, State: domain.TagSorted},
	}}}
}

func TestBars_NoColorUsesGlyphs(t *testing.T) {
	b := NewBars(&bytes.Buffer{}, "never")
	assert.False(t, b.Colored())

	out := b.Render(frame())
	assert.Contains(t, out, " 50 |"+strings.Repeat("?", 25)+"\n")
	assert.Contains(t, out, "100 |"+strings.Repeat("=", 50)+"\n")
	assert.Contains(t, out, "# default  ? comparing  ~ swapping  ^ pivot  = sorted")
}

func TestBars_ColorUsesBlocks(t *testing.T) {
	b := NewBars(&bytes.Buffer{}, "always")
	require.True(t, b.Colored())

	out := b.Render(frame())
	assert.Contains(t, out, block)
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "?")
}

func TestWidth_NonTerminal(t *testing.T) {
	assert.Equal(t, defaultWidth, Width(&bytes.Buffer{}))
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf, termenv.Ascii)
	assert.Contains(t, buf.String(), `|___/\___/|_|`)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewRenderer_Plain(t *testing.T) {
	render, err := NewRenderer(80, false)
	require.NoError(t, err)

	out, err := render("# Quick Sort\n\nPicks a **pivot**.")
	require.NoError(t, err)
	assert.Contains(t, out, "Quick Sort")
	assert.Contains(t, out, "pivot")
}
