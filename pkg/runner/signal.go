package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalManager ties playback to SIGINT/SIGTERM.
// The first signal cancels Context; Reset re-arms it for another playback.
type SignalManager struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager creates a manager listening for signals on top of parent.
func NewSignalManager(parent context.Context) *SignalManager {
	if parent == nil {
		parent = context.Background()
	}
	sm := &SignalManager{parent: parent}
	sm.Reset()
	return sm
}

// Context returns the current signal context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Cancel stops the current context as if a signal had arrived.
func (sm *SignalManager) Cancel() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

// Reset re-arms the signal listener.
func (sm *SignalManager) Reset() {
	if sm.cancel != nil {
		sm.cancel()
	}
	sm.ctx, sm.cancel = signal.NotifyContext(sm.parent, os.Interrupt, syscall.SIGTERM)
}

// Stop permanently stops the signal listener.
func (sm *SignalManager) Stop() {
	sm.Cancel()
}
