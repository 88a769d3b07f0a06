package builder

import (
	"fmt"

	"github.com/katalvlaran/dptrace/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleNodes = 2
	probMin       = 0.0
	probMax       = 1.0
)

// Path adds the directed edges 0→1→…→n-1.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i+1 < g.Vertices; i++ {
			if err := g.AddEdge(i, i+1, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		return nil
	}
}

// Cycle adds the directed ring 0→1→…→n-1→0. Requires n ≥ 2.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Vertices < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, g.Vertices, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < g.Vertices; i++ {
			if err := g.AddEdge(i, (i+1)%g.Vertices, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}
		return nil
	}
}

// Complete adds u→v for every ordered pair u≠v, u ascending then v ascending.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for u := 0; u < g.Vertices; u++ {
			for v := 0; v < g.Vertices; v++ {
				if u == v {
					continue
				}
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}
		return nil
	}
}

// RandomSparse includes each ordered pair (u,v), u≠v, independently with
// probability p. Trials run in a fixed order (u asc, then v asc), so a fixed
// seed always yields the same edge list.
//
// Errors: ErrInvalidProbability for p outside [0,1]; ErrNeedRandSource when
// 0 < p < 1 and no RNG is configured.
//
// Complexity: O(n²) trials.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for u := 0; u < g.Vertices; u++ {
			for v := 0; v < g.Vertices; v++ {
				if u == v || !trial(cfg, p) {
					continue
				}
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}
		return nil
	}
}

// trial is a Bernoulli(p) draw; p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
