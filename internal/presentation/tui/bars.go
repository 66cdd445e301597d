package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/runner"
)

const (
	defaultWidth = 60
	block        = "█"
)

// Palette maps each tag to a bar colour.
var Palette = map[domain.Tag]string{
	domain.TagDefault:   "#3b82f6",
	domain.TagComparing: "#facc15",
	domain.TagSwapping:  "#f87171",
	domain.TagPivot:     "#c084fc",
	domain.TagSorted:    "#4ade80",
}

// Bars draws frames as coloured horizontal bars on a terminal.
type Bars struct {
	out   *termenv.Output
	width int
}

// NewBars creates a bar renderer for w. Mode is auto, always or never.
func NewBars(w io.Writer, mode string) *Bars {
	var opts []termenv.OutputOption
	switch mode {
	case "always":
		opts = append(opts, termenv.WithProfile(termenv.TrueColor))
	case "never":
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)
	return &Bars{out: out, width: Width(w) - 10}
}

// Profile returns the colour profile in use.
func (b *Bars) Profile() termenv.Profile {
	return b.out.Profile
}

// Colored reports whether bars are drawn with colour instead of glyphs.
func (b *Bars) Colored() bool {
	return b.out.Profile != termenv.Ascii
}

// Render implements runner.FrameRenderer.
func (b *Bars) Render(f runner.Frame) string {
	paint := func(e domain.Element, bar string) string { return bar }
	if b.Colored() {
		paint = func(e domain.Element, bar string) string {
			solid := strings.Repeat(block, len(bar))
			return b.out.String(solid).Foreground(b.out.Color(Palette[e.State])).String()
		}
	}
	return runner.RenderBars(f.Step.Array, max(b.width, 10), paint) + b.Legend() + "\n"
}

// Clear redraws from the top left corner on a terminal.
func (b *Bars) Clear(io.Writer) {
	b.out.ClearScreen()
}

// Legend lists the tag colours, or glyphs without colour.
func (b *Bars) Legend() string {
	tags := []domain.Tag{domain.TagDefault, domain.TagComparing, domain.TagSwapping, domain.TagPivot, domain.TagSorted}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		marker := string(runner.Glyph(t))
		if b.Colored() {
			marker = b.out.String(block).Foreground(b.out.Color(Palette[t])).String()
		}
		parts = append(parts, fmt.Sprintf("%s %s", marker, t))
	}
	return strings.Join(parts, "  ")
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of w or a default for non-terminals.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return defaultWidth
	}
	return cols
}
