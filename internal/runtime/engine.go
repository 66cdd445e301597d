package runtime

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/registry"
)

// Engine runs catalog algorithms over private copies of their input.
// It is safe for concurrent use; each run owns its own Sorter.
type Engine struct {
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger

	mu     sync.Mutex
	seeded bool
	seed   uint64
	runs   uint64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithSeed makes randomized algorithms reproducible. Run k of the engine
// uses the stream (seed, k).
func WithSeed(seed uint64) EngineOption {
	return func(e *Engine) {
		e.seeded = true
		e.seed = seed
	}
}

// NewEngine creates an engine with every catalog algorithm registered.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		registry: registry.NewRegistry(domain.DefaultAlgorithm),
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, a := range catalog {
		e.registry.Register(a.Descriptor, e.bind(a.body))
	}
	return e
}

// bind adapts an algorithm body to the registry's uniform signature.
func (e *Engine) bind(body func(*Sorter)) registry.SortFunc {
	return func(ctx context.Context, input []domain.Element) ([]domain.Element, []domain.Step, domain.Stats) {
		s := NewSorter(input, e.nextRand(), e.logger)
		body(s)
		return s.Array(), s.Steps(), s.Stats()
	}
}

func (e *Engine) nextRand() *rand.Rand {
	e.mu.Lock()
	defer e.mu.Unlock()
	run := e.runs
	e.runs++
	if !e.seeded {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(e.seed, run))
}

// Run executes the algorithm named by id to completion and returns its step log.
// Unknown identifiers fall back to domain.DefaultAlgorithm.
func (e *Engine) Run(ctx context.Context, id string, input []domain.Element) domain.Result {
	entry, fallback := e.registry.Resolve(id)
	algo := entry.Descriptor.ID

	logger := e.logger.With("algorithm", algo, "size", len(input))
	if fallback {
		logger.Warn("unknown algorithm, using default", "requested", id)
	}

	start := time.Now()
	if e.hooks.OnRunStart != nil {
		e.hooks.OnRunStart(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: start, Type: domain.EventRunStart},
			Algorithm: algo,
			Requested: id,
			Fallback:  fallback,
			Size:      len(input),
		})
	}
	logger.Debug("run started")

	final, steps, stats := entry.Sort(ctx, input)
	elapsed := time.Since(start)

	logger.Debug("run finished",
		"steps", len(steps),
		"comparisons", stats.Comparisons,
		"swaps", stats.Swaps,
		"duration", elapsed,
	)
	if e.hooks.OnRunFinish != nil {
		e.hooks.OnRunFinish(ctx, &domain.RunEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRunFinish},
			Algorithm: algo,
			Requested: id,
			Fallback:  fallback,
			Size:      len(input),
			Steps:     len(steps),
			Stats:     stats,
			Duration:  elapsed,
		})
	}

	return domain.Result{
		Algorithm: algo,
		Requested: id,
		Fallback:  fallback,
		Final:     final,
		Steps:     steps,
		Stats:     stats,
	}
}

// Catalog returns every descriptor in display order.
func (e *Engine) Catalog() []domain.Descriptor {
	return e.registry.Descriptors()
}

// Describe returns the descriptor registered under id.
// Returns domain.ErrUnknownAlgorithm for unregistered identifiers.
func (e *Engine) Describe(id string) (domain.Descriptor, error) {
	entry, err := e.registry.Get(id)
	if err != nil {
		return domain.Descriptor{}, err
	}
	return entry.Descriptor, nil
}

// Resolve reports which algorithm a run of id would execute.
func (e *Engine) Resolve(id string) (domain.AlgorithmID, bool) {
	entry, fallback := e.registry.Resolve(id)
	return entry.Descriptor.ID, fallback
}
