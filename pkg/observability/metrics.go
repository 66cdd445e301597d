package observability

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/sortscope/pkg/domain"
)

const namespace = "sortscope"

// Metrics holds the Prometheus collectors fed by engine runs.
type Metrics struct {
	Runs        *prometheus.CounterVec
	Comparisons *prometheus.HistogramVec
	Swaps       *prometheus.HistogramVec
	Steps       *prometheus.HistogramVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counts := prometheus.ExponentialBuckets(1, 4, 10)
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of sort runs",
			},
			[]string{"algorithm", "fallback"},
		),
		Comparisons: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "comparisons",
				Help:      "Comparisons performed per run",
				Buckets:   counts,
			},
			[]string{"algorithm"},
		),
		Swaps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "swaps",
				Help:      "Swaps and writes performed per run",
				Buckets:   counts,
			},
			[]string{"algorithm"},
		),
		Steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "steps",
				Help:      "Recorded steps per run",
				Buckets:   counts,
			},
			[]string{"algorithm"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall time spent computing a run",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
	}
	reg.MustRegister(m.Runs, m.Comparisons, m.Swaps, m.Steps, m.Duration)
	return m
}

// Observe records a finished run.
func (m *Metrics) Observe(e *domain.RunEvent) {
	algo := string(e.Algorithm)
	m.Runs.WithLabelValues(algo, strconv.FormatBool(e.Fallback)).Inc()
	m.Comparisons.WithLabelValues(algo).Observe(float64(e.Stats.Comparisons))
	m.Swaps.WithLabelValues(algo).Observe(float64(e.Stats.Swaps))
	m.Steps.WithLabelValues(algo).Observe(float64(e.Steps))
	m.Duration.WithLabelValues(algo).Observe(e.Duration.Seconds())
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunFinish: func(_ context.Context, e *domain.RunEvent) {
			m.Observe(e)
		},
	}
}
