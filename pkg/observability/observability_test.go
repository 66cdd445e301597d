package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/sortscope/pkg/domain"
)

func finishEvent(algo domain.AlgorithmID, fallback bool) *domain.RunEvent {
	return &domain.RunEvent{
		EventBase: domain.EventBase{Type: domain.EventRunFinish, Timestamp: time.Now()},
		Algorithm: algo,
		Fallback:  fallback,
		Size:      3,
		Steps:     9,
		Stats:     domain.Stats{Comparisons: 3, Swaps: 3},
		Duration:  time.Millisecond,
	}
}

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()

	hooks.OnRunFinish(context.Background(), finishEvent(domain.AlgorithmBubble, false))
	hooks.OnRunFinish(context.Background(), finishEvent(domain.AlgorithmBubble, true))
	hooks.OnRunFinish(context.Background(), finishEvent(domain.AlgorithmQuick, false))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("bubble", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("bubble", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("quick", "false")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Comparisons))

	count, err := testutil.GatherAndCount(reg, "sortscope_runs_total")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestLoggingHooks(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	hooks := LoggingHooks(logger)

	hooks.OnRunStart(context.Background(), &domain.RunEvent{Algorithm: domain.AlgorithmHeap, Requested: "heap", Size: 5})
	hooks.OnRunFinish(context.Background(), finishEvent(domain.AlgorithmHeap, false))

	out := buf.String()
	assert.Contains(t, out, "msg=run_start algorithm=heap")
	assert.Contains(t, out, "msg=run_finish algorithm=heap")
	assert.Contains(t, out, "comparisons=3")
}

func TestCombine(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnRunStart:  func(context.Context, *domain.RunEvent) { calls = append(calls, "a.start") },
		OnRunFinish: func(context.Context, *domain.RunEvent) { calls = append(calls, "a.finish") },
	}
	b := domain.LifecycleHooks{
		OnRunFinish: func(context.Context, *domain.RunEvent) { calls = append(calls, "b.finish") },
	}

	h := Combine(a, b)
	h.OnRunStart(context.Background(), &domain.RunEvent{})
	h.OnRunFinish(context.Background(), &domain.RunEvent{})

	assert.Equal(t, []string{"a.start", "a.finish", "b.finish"}, calls)
	assert.Nil(t, Combine().OnRunStart)
}
