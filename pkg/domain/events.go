package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventRunFinish EventType = "run_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RunEvent describes the start or the end of an engine run.
// Steps, Stats and Duration are only populated on EventRunFinish.
type RunEvent struct {
	EventBase
	Algorithm AlgorithmID   `json:"algorithm"`
	Requested string        `json:"requested"`
	Fallback  bool          `json:"fallback,omitempty"`
	Size      int           `json:"size"`
	Steps     int           `json:"steps,omitempty"`
	Stats     Stats         `json:"stats"`
	Duration  time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnRunStart  func(context.Context, *RunEvent)
	OnRunFinish func(context.Context, *RunEvent)
}
