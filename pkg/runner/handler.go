package runner

import (
	"context"

	"github.com/aretw0/sortscope/pkg/domain"
)

// Frame is one step presented by the player.
type Frame struct {
	// Index is the position of Step in the log, Total the length of the log.
	Index int
	Total int
	Step  domain.Step
	// Prev is the previously presented step, nil for the first frame.
	Prev *domain.Step
}

// Summary describes a finished playback.
type Summary struct {
	Frames    int
	Total     int
	Stats     domain.Stats
	Completed bool
}

// FrameHandler defines the strategy for presenting frames.
// This allows switching between text (CLI/TUI) and JSON (structured) modes.
type FrameHandler interface {
	// Frame presents a single step.
	Frame(ctx context.Context, f Frame) error

	// Done is called once when playback stops, whether it completed or was cancelled.
	Done(ctx context.Context, s Summary) error
}

// FrameHandlerFunc adapts a function to FrameHandler with a no-op Done.
type FrameHandlerFunc func(ctx context.Context, f Frame) error

func (fn FrameHandlerFunc) Frame(ctx context.Context, f Frame) error { return fn(ctx, f) }

func (fn FrameHandlerFunc) Done(ctx context.Context, s Summary) error { return nil }
