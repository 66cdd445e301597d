package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/sortscope/pkg/domain"
)

// FrameRenderer turns a frame into its textual representation.
type FrameRenderer func(f Frame) string

// TextHandler presents frames as bar charts on a writer.
type TextHandler struct {
	Writer   io.Writer
	Renderer FrameRenderer
	Title    string
	// Clear runs before each frame, e.g. to redraw in place on a terminal.
	Clear func(w io.Writer)
	// Quiet suppresses frames and only prints the summary.
	Quiet bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextRenderer configures the frame renderer.
func WithTextRenderer(r FrameRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = r
	}
}

// WithTitle sets the heading printed above frames and in the summary.
func WithTitle(title string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Title = title
	}
}

// WithClear configures the function called before each frame.
func WithClear(fn func(w io.Writer)) TextHandlerOption {
	return func(h *TextHandler) {
		h.Clear = fn
	}
}

// WithQuiet suppresses frame output.
func WithQuiet(quiet bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.Quiet = quiet
	}
}

// NewTextHandler creates a handler writing to w (stdout when nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:   w,
		Renderer: PlainBars(40),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Frame(ctx context.Context, f Frame) error {
	if h.Quiet {
		return nil
	}
	if h.Clear != nil {
		h.Clear(h.Writer)
	}
	var sb strings.Builder
	if h.Title != "" {
		sb.WriteString(h.Title)
		sb.WriteString("\n")
	}
	sb.WriteString(h.Renderer(f))
	fmt.Fprintf(&sb, "step %d/%d  comparisons: %d  swaps: %d\n",
		f.Index+1, f.Total, f.Step.Stats.Comparisons, f.Step.Stats.Swaps)
	_, err := io.WriteString(h.Writer, sb.String())
	return err
}

func (h *TextHandler) Done(ctx context.Context, s Summary) error {
	var sb strings.Builder
	sb.WriteString("\n")
	if s.Completed {
		sb.WriteString("Sorting complete!\n")
	} else {
		fmt.Fprintf(&sb, "Playback stopped at frame %d/%d\n", s.Frames, s.Total)
	}
	sb.WriteString(FormatStats(h.Title, s.Stats))
	_, err := io.WriteString(h.Writer, sb.String())
	return err
}

// FormatStats renders the statistics panel.
func FormatStats(name string, st domain.Stats) string {
	var sb strings.Builder
	if name != "" {
		fmt.Fprintf(&sb, "Algorithm:   %s\n", name)
	}
	fmt.Fprintf(&sb, "Comparisons: %d\n", st.Comparisons)
	fmt.Fprintf(&sb, "Swaps:       %d\n", st.Swaps)
	fmt.Fprintf(&sb, "Time:        %s\n", st.TimeComplexity)
	fmt.Fprintf(&sb, "Space:       %s\n", st.SpaceComplexity)
	return sb.String()
}

// Glyph returns the plain ASCII bar character for a tag.
func Glyph(t domain.Tag) byte {
	switch t {
	case domain.TagComparing:
		return '?'
	case domain.TagSwapping:
		return '~'
	case domain.TagPivot:
		return '^'
	case domain.TagSorted:
		return '='
	default:
		return '#'
	}
}

// PlainBars renders one horizontal bar per element, scaled so the largest
// value spans width characters.
func PlainBars(width int) FrameRenderer {
	if width < 1 {
		width = 1
	}
	return func(f Frame) string {
		return RenderBars(f.Step.Array, width, func(e domain.Element, bar string) string {
			return bar
		})
	}
}

// RenderBars lays out bars for arr and lets paint decorate each one.
// Values are scaled against the array's span so negative values still draw.
func RenderBars(arr []domain.Element, width int, paint func(e domain.Element, bar string) string) string {
	if len(arr) == 0 {
		return "(empty)\n"
	}
	lo, hi := arr[0].Value, arr[0].Value
	for _, e := range arr[1:] {
		lo = min(lo, e.Value)
		hi = max(hi, e.Value)
	}
	// Bars start at zero unless values go negative.
	base := min(lo, 0)
	span := hi - base
	labelWidth := max(len(fmt.Sprint(lo)), len(fmt.Sprint(hi)))

	var sb strings.Builder
	for _, e := range arr {
		n := width
		if span > 0 {
			n = (e.Value - base) * width / span
		}
		n = max(n, 1)
		bar := strings.Repeat(string(Glyph(e.State)), n)
		fmt.Fprintf(&sb, "%*d |%s\n", labelWidth, e.Value, paint(e, bar))
	}
	return sb.String()
}
