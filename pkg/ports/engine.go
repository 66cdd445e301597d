package ports

import (
	"context"

	"github.com/aretw0/sortscope/pkg/domain"
)

// Runner executes sorting runs.
type Runner interface {
	// Run sorts a private copy of input with the algorithm named by id.
	// Unknown identifiers fall back to the default algorithm.
	Run(ctx context.Context, id string, input []domain.Element) domain.Result
}

// Catalog exposes the static algorithm descriptors.
type Catalog interface {
	// Catalog returns every descriptor in display order.
	Catalog() []domain.Descriptor

	// Describe returns one descriptor or domain.ErrUnknownAlgorithm.
	Describe(id string) (domain.Descriptor, error)
}

// SortEngine is the engine surface used by the adapters.
type SortEngine interface {
	Runner
	Catalog
}
