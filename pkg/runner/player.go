package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/sortscope/pkg/domain"
)

// Player replays a finished step log one frame at a time.
//
// Controls (Pause, Resume, Step, SetInterval) are safe to call from any
// goroutine while Play is running. A Player can be reused: each Play call
// starts from the first step.
type Player struct {
	handler FrameHandler
	logger  *slog.Logger

	mu       sync.Mutex
	interval time.Duration
	paused   bool
	stepOnce bool
	cursor   int
	// changed is closed and replaced on every control change so a waiting
	// Play re-evaluates its state.
	changed chan struct{}
}

// NewPlayer creates a player. Without a handler, frames are discarded.
func NewPlayer(opts ...Option) *Player {
	p := &Player{
		interval: DefaultInterval,
		changed:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.handler == nil {
		p.handler = FrameHandlerFunc(func(context.Context, Frame) error { return nil })
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p
}

// Play presents every step in order, waiting the current interval before
// each frame. It returns the number of frames presented. Cancelling ctx stops
// playback; the returned error is then ctx.Err().
func (p *Player) Play(ctx context.Context, steps []domain.Step) (int, error) {
	p.mu.Lock()
	p.cursor = 0
	p.mu.Unlock()

	p.logger.Debug("Playback started", "steps", len(steps), "interval", p.Interval())

	var prev *domain.Step
	var err error
	played := 0
	for i := range steps {
		if err = p.wait(ctx); err != nil {
			break
		}
		if err = p.handler.Frame(ctx, Frame{Index: i, Total: len(steps), Step: steps[i], Prev: prev}); err != nil {
			err = fmt.Errorf("frame %d: %w", i, err)
			break
		}
		prev = &steps[i]
		played++
		p.mu.Lock()
		p.cursor = played
		p.mu.Unlock()
	}

	summary := Summary{Frames: played, Total: len(steps), Completed: err == nil && played == len(steps)}
	if prev != nil {
		summary.Stats = prev.Stats
	}
	// Done runs detached from ctx so a cancelled playback can still report.
	if doneErr := p.handler.Done(context.WithoutCancel(ctx), summary); doneErr != nil && err == nil {
		err = doneErr
	}

	switch {
	case err == nil:
		p.logger.Debug("Playback finished", "frames", played)
	case errors.Is(err, context.Canceled):
		p.logger.Debug("Playback cancelled", "frames", played, "total", len(steps))
	default:
		p.logger.Error("Playback failed", "frames", played, "err", err)
	}
	return played, err
}

// wait blocks until the next frame may be presented.
func (p *Player) wait(ctx context.Context) error {
	for {
		p.mu.Lock()
		paused, interval, changed := p.paused, p.interval, p.changed
		if paused && p.stepOnce {
			p.stepOnce = false
			p.mu.Unlock()
			return ctx.Err()
		}
		p.mu.Unlock()

		if paused {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-changed:
				continue
			}
		}
		if interval <= 0 {
			return ctx.Err()
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-changed:
			// Restart the wait with the new interval or pause state.
			timer.Stop()
		case <-timer.C:
			return nil
		}
	}
}

func (p *Player) notifyLocked() {
	close(p.changed)
	p.changed = make(chan struct{})
}

// Pause holds playback before the next frame.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.paused {
		p.paused = true
		p.notifyLocked()
	}
}

// Resume continues a paused playback.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.paused = false
		p.stepOnce = false
		p.notifyLocked()
	}
}

// Toggle flips between paused and playing and reports whether playback is now paused.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = !p.paused
	p.stepOnce = false
	p.notifyLocked()
	return p.paused
}

// Step lets a paused playback advance by exactly one frame.
// It has no effect while playing.
func (p *Player) Step() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused {
		p.stepOnce = true
		p.notifyLocked()
	}
}

// SetInterval changes the delay before each frame. A frame already being
// waited for is rescheduled with the new interval.
func (p *Player) SetInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = d
	p.notifyLocked()
}

// Interval returns the current delay before each frame.
func (p *Player) Interval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

// Paused reports whether playback is held.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Cursor returns the number of frames presented by the current or last Play.
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Faster halves the interval, bounded by MinInterval.
func (p *Player) Faster() time.Duration {
	return p.scale(func(d time.Duration) time.Duration { return d / 2 })
}

// Slower doubles the interval, bounded by MaxInterval.
func (p *Player) Slower() time.Duration {
	return p.scale(func(d time.Duration) time.Duration { return d * 2 })
}

func (p *Player) scale(fn func(time.Duration) time.Duration) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	d := fn(p.interval)
	if d == 0 {
		d = MinInterval
	}
	p.interval = min(max(d, MinInterval), MaxInterval)
	p.notifyLocked()
	return p.interval
}
