package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/sortscope/pkg/domain"
)

// Event types written by JSONHandler.
const (
	FrameTypeStep = "step"
	FrameTypeDiff = "diff"
	FrameTypeDone = "done"
)

// JSONFrame is a single NDJSON line.
type JSONFrame struct {
	Type  string           `json:"type"`
	Index int              `json:"index"`
	Total int              `json:"total"`
	Step  *domain.Step     `json:"step,omitempty"`
	Diff  *domain.StepDiff `json:"diff,omitempty"`

	Frames    int           `json:"frames,omitempty"`
	Completed bool          `json:"completed,omitempty"`
	Stats     *domain.Stats `json:"stats,omitempty"`
}

// JSONHandler writes one JSON object per line.
// In compact mode every frame after the first carries only the difference
// from the previous step, and steps identical to their predecessor are skipped.
type JSONHandler struct {
	Encoder *json.Encoder
	Compact bool

	mu sync.Mutex
}

// NewJSONHandler creates a handler writing NDJSON to w (stdout when nil).
func NewJSONHandler(w io.Writer, compact bool) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Encoder: json.NewEncoder(w),
		Compact: compact,
	}
}

func (h *JSONHandler) Frame(ctx context.Context, f Frame) error {
	out := JSONFrame{Type: FrameTypeStep, Index: f.Index, Total: f.Total}
	if h.Compact && f.Prev != nil {
		out.Type = FrameTypeDiff
		out.Diff = domain.Diff(f.Index, f.Prev, &f.Step)
		if out.Diff.IsEmpty() {
			return nil
		}
	} else {
		step := f.Step
		out.Step = &step
	}
	return h.encode(out)
}

func (h *JSONHandler) Done(ctx context.Context, s Summary) error {
	stats := s.Stats
	return h.encode(JSONFrame{
		Type:      FrameTypeDone,
		Total:     s.Total,
		Frames:    s.Frames,
		Completed: s.Completed,
		Stats:     &stats,
	})
}

func (h *JSONHandler) encode(v JSONFrame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(v)
}
