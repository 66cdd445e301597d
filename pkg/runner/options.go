package runner

import (
	"log/slog"
	"time"
)

const (
	// DefaultInterval is the delay before each frame.
	DefaultInterval = 100 * time.Millisecond
	// MinInterval and MaxInterval bound interactive speed changes.
	MinInterval = 10 * time.Millisecond
	MaxInterval = 500 * time.Millisecond
)

// Option defines a functional option for configuring the Player.
type Option func(*Player)

// WithInterval sets the delay before each frame. Zero plays as fast as the handler allows.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		p.interval = d
	}
}

// WithHandler configures the frame handler.
func WithHandler(h FrameHandler) Option {
	return func(p *Player) {
		p.handler = h
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		p.logger = logger
	}
}

// WithStartPaused makes Play wait for Resume or Step before the first frame.
func WithStartPaused(paused bool) Option {
	return func(p *Player) {
		p.paused = paused
	}
}
