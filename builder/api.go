package builder

import (
	"fmt"

	"github.com/katalvlaran/dptrace/core"
)

// Constructor adds edges to g using the resolved builderConfig. Constructors
// validate their parameters and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices labelled by the configured IDFn
// and applies cons in order. Edges are appended, so composing constructors
// may create parallel edges.
//
// Errors: ErrTooFewVertices for n < 1, ErrConstructFailed for a nil
// constructor, and any constructor error wrapped as "BuildGraph: %w".
//
// Complexity: O(n) plus the cost of every constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(bopts...)
	g := core.NewGraph(n, core.WithLabels(labels(cfg.idFn, n)...))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
