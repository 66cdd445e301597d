package sortscope

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/sortscope/internal/runtime"
	"github.com/aretw0/sortscope/pkg/domain"
	"github.com/aretw0/sortscope/pkg/generator"
	"github.com/aretw0/sortscope/pkg/ports"
)

var _ ports.SortEngine = (*Engine)(nil)

// Engine is the high-level entry point for the sortscope library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	seed    *uint64
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSeed makes the randomized algorithms (bogo) reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seed = &seed
	}
}

// New initializes a new sortscope Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	}
	if eng.seed != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithSeed(*eng.seed))
	}

	eng.runtime = runtime.NewEngine(runtimeOpts...)
	return eng
}

// Run executes the algorithm named by id over a private copy of input and
// returns the final array, the complete step log and the final stats.
// Unknown identifiers run domain.DefaultAlgorithm and set Result.Fallback.
func (e *Engine) Run(ctx context.Context, id string, input []domain.Element) domain.Result {
	return e.runtime.Run(ctx, id, input)
}

// RunValues is Run over plain values, with IDs assigned the way the generator does.
func (e *Engine) RunValues(ctx context.Context, id string, values []int) domain.Result {
	return e.runtime.Run(ctx, id, generator.FromValues(values))
}

// Catalog returns the static algorithm catalog in display order.
func (e *Engine) Catalog() []domain.Descriptor {
	return e.runtime.Catalog()
}

// Describe returns the catalog entry for id, or domain.ErrUnknownAlgorithm.
func (e *Engine) Describe(id string) (domain.Descriptor, error) {
	return e.runtime.Describe(id)
}

// Resolve reports which algorithm id maps to and whether that is the fallback.
func (e *Engine) Resolve(id string) (domain.AlgorithmID, bool) {
	return e.runtime.Resolve(id)
}
