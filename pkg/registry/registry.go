package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/sortscope/pkg/domain"
)

// SortFunc is the uniform signature every algorithm is bound to.
// It runs to completion before returning and must not retain or mutate input.
type SortFunc func(ctx context.Context, input []domain.Element) (final []domain.Element, steps []domain.Step, stats domain.Stats)

// Entry binds a catalog descriptor to its implementation.
type Entry struct {
	Descriptor domain.Descriptor
	Sort       SortFunc
}

// Registry manages the available algorithms keyed by identifier.
// Lookups for unknown identifiers resolve to a fallback entry instead of failing.
type Registry struct {
	mu       sync.RWMutex
	entries  map[domain.AlgorithmID]Entry
	order    []domain.AlgorithmID
	fallback domain.AlgorithmID
}

// NewRegistry creates a new empty registry whose misses resolve to fallback.
func NewRegistry(fallback domain.AlgorithmID) *Registry {
	return &Registry{
		entries:  make(map[domain.AlgorithmID]Entry),
		fallback: fallback,
	}
}

// Register adds an algorithm to the registry.
// If an entry with the same ID exists, it is overwritten in place.
func (r *Registry) Register(desc domain.Descriptor, fn SortFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[desc.ID]; !exists {
		r.order = append(r.order, desc.ID)
	}
	r.entries[desc.ID] = Entry{Descriptor: desc, Sort: fn}
}

// Get returns the exact entry for id.
// Returns domain.ErrUnknownAlgorithm if it is not registered.
func (r *Registry) Get(id string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[domain.AlgorithmID(id)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, id)
	}
	return e, nil
}

// Resolve returns the entry for id, or the fallback entry when id is unknown.
// The boolean reports whether the fallback was used.
// Resolve panics if the fallback itself was never registered.
func (r *Registry) Resolve(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[domain.AlgorithmID(id)]; ok {
		return e, false
	}
	e, ok := r.entries[r.fallback]
	if !ok {
		panic(fmt.Sprintf("registry: fallback algorithm %q is not registered", r.fallback))
	}
	return e, true
}

// Descriptors returns the catalog in registration order.
func (r *Registry) Descriptors() []domain.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].Descriptor)
	}
	return out
}
