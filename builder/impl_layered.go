package builder

import (
	"fmt"

	"github.com/katalvlaran/dptrace/core"
	"github.com/katalvlaran/dptrace/multistage"
)

const (
	methodLayered = "Layered"
	minStages     = 2
)

// Layered builds a multistage problem with len(sizes) stages. The first and
// last stage hold exactly one vertex (source and target). Vertices are
// numbered stage by stage and labelled by the configured IDFn.
//
// Between consecutive stages each pair (u,v) becomes an edge with
// probability p. Afterwards every vertex without an outgoing edge gets one
// to a random vertex of the next stage, and every vertex without an
// incoming edge gets one from a random vertex of the previous stage, so the
// target is reachable from every vertex.
//
// Errors: ErrTooFewVertices for fewer than two stages or a stage of size < 1,
// plus the probability and RNG errors of RandomSparse. The RNG is required
// whenever an interior stage has more than one vertex.
func Layered(sizes []int, p float64, bopts ...BuilderOption) (multistage.Problem, error) {
	if len(sizes) < minStages {
		return multistage.Problem{}, fmt.Errorf("%s: %d stages < min=%d: %w", methodLayered, len(sizes), minStages, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return multistage.Problem{}, fmt.Errorf("%s: p=%.6f: %w", methodLayered, p, ErrInvalidProbability)
	}

	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return multistage.Problem{}, fmt.Errorf("%s: %w", methodLayered, ErrNeedRandSource)
	}
	stages := make([][]int, len(sizes))
	n := 0
	for s, size := range sizes {
		if size < 1 {
			return multistage.Problem{}, fmt.Errorf("%s: stage %d has size %d: %w", methodLayered, s, size, ErrTooFewVertices)
		}
		if (s == 0 || s == len(sizes)-1) && size != 1 {
			return multistage.Problem{}, fmt.Errorf("%s: stage %d must hold a single vertex, got %d: %w",
				methodLayered, s, size, ErrConstructFailed)
		}
		if cfg.rng == nil && size > 1 {
			return multistage.Problem{}, fmt.Errorf("%s: %w", methodLayered, ErrNeedRandSource)
		}
		stages[s] = make([]int, size)
		for i := range stages[s] {
			stages[s][i] = n
			n++
		}
	}

	g := core.NewGraph(n, core.WithLabels(labels(cfg.idFn, n)...))
	for s := 0; s+1 < len(stages); s++ {
		from, to := stages[s], stages[s+1]
		hasOut := make([]bool, len(from))
		hasIn := make([]bool, len(to))
		for i, u := range from {
			for j, v := range to {
				if !trial(cfg, p) {
					continue
				}
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return multistage.Problem{}, fmt.Errorf("%s: %w", methodLayered, err)
				}
				hasOut[i], hasIn[j] = true, true
			}
		}
		for i, u := range from {
			if !hasOut[i] {
				j := pick(cfg, len(to))
				if err := g.AddEdge(u, to[j], cfg.weightFn(cfg.rng)); err != nil {
					return multistage.Problem{}, fmt.Errorf("%s: %w", methodLayered, err)
				}
				hasIn[j] = true
			}
		}
		for j, v := range to {
			if !hasIn[j] {
				if err := g.AddEdge(from[pick(cfg, len(from))], v, cfg.weightFn(cfg.rng)); err != nil {
					return multistage.Problem{}, fmt.Errorf("%s: %w", methodLayered, err)
				}
			}
		}
	}

	return multistage.Problem{
		Graph:  g,
		Stages: stages,
		Source: stages[0][0],
		Target: stages[len(stages)-1][0],
	}, nil
}

// pick returns a random index in [0,n); 0 when n == 1.
func pick(cfg builderConfig, n int) int {
	if n == 1 {
		return 0
	}
	return cfg.rng.Intn(n)
}
