package multistage

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/dptrace/core"
)

// Solve runs the backward dynamic-programming sweep over a multistage graph.
//
// Stages are processed from the last to the first:
//
//	cost[target] = 0, cost[v] = ∞ for the other last-stage vertices;
//	cost[j] = min over edges j→l of (w(j,l) + cost[l]);  decision[j] = that l.
//
// Tie-break: among edges of equal total cost the first one in the graph's edge
// order wins, so path reconstruction is deterministic.
//
// One Step is recorded per stage, starting with the base case. An unreachable
// target is a result (Reachable=false, Path=nil), not an error.
//
// Complexity: O(V + E) time.
func Solve(p Problem) (Result, error) {
	if err := validate(p); err != nil {
		return Result{}, err
	}

	g := p.Graph
	k := len(p.Stages)
	out := g.Outgoing()

	cost := make([]int64, g.Vertices)
	decision := make([]int, g.Vertices)
	for v := range cost {
		cost[v] = core.Inf
		decision[v] = -1
	}

	steps := make([]Step, 0, k)
	record := func(stage int, desc string) {
		steps = append(steps, Step{
			Stage:       stage,
			Nodes:       slices.Clone(p.Stages[stage]),
			Cost:        slices.Clone(cost),
			Decision:    slices.Clone(decision),
			Description: desc,
		})
	}

	// Base case: only the target has a finite cost in the last stage.
	cost[p.Target] = 0
	record(k-1, fmt.Sprintf("Stage %d (base): cost(%s) = 0, other vertices in this stage = ∞",
		k-1, g.Label(p.Target)))

	for s := k - 2; s >= 0; s-- {
		parts := make([]string, 0, len(p.Stages[s]))
		for _, j := range p.Stages[s] {
			for _, idx := range out[j] {
				e := g.Edges[idx]
				cand := core.AddInf(cost[e.To], e.Weight)
				if cand < cost[j] {
					cost[j] = cand
					decision[j] = e.To
				}
			}
			if decision[j] < 0 {
				parts = append(parts, fmt.Sprintf("cost(%s) = ∞", g.Label(j)))
				continue
			}
			parts = append(parts, fmt.Sprintf("cost(%s) = %d via %s",
				g.Label(j), cost[j], g.Label(decision[j])))
		}
		record(s, fmt.Sprintf("Stage %d: %s", s, strings.Join(parts, ", ")))
	}

	res := Result{
		MinCost:  cost[p.Source],
		Cost:     cost,
		Decision: decision,
		Steps:    steps,
	}
	if res.MinCost == core.Inf {
		return res, nil
	}
	res.Reachable = true
	res.Path = []int{p.Source}
	for v := p.Source; v != p.Target; {
		v = decision[v]
		res.Path = append(res.Path, v)
	}

	return res, nil
}

// validate checks the stage partition, the source/target placement and that
// every edge joins consecutive stages.
func validate(p Problem) error {
	if err := p.Graph.Validate(); err != nil {
		return err
	}
	g := p.Graph
	if len(p.Stages) == 0 {
		return ErrNoStages
	}

	stageOf := make([]int, g.Vertices)
	for v := range stageOf {
		stageOf[v] = -1
	}
	for s, nodes := range p.Stages {
		if len(nodes) == 0 {
			return fmt.Errorf("%w: stage %d", ErrEmptyStage, s)
		}
		for _, v := range nodes {
			if !g.HasVertex(v) {
				return fmt.Errorf("%w: %d in stage %d", core.ErrVertexOutOfRange, v, s)
			}
			if stageOf[v] >= 0 {
				return fmt.Errorf("%w: %s in stages %d and %d", ErrDuplicateStageVertex, g.Label(v), stageOf[v], s)
			}
			stageOf[v] = s
		}
	}

	if !g.HasVertex(p.Source) || stageOf[p.Source] != 0 {
		return fmt.Errorf("%w: %d", ErrSourceNotInFirstStage, p.Source)
	}
	if !g.HasVertex(p.Target) || stageOf[p.Target] != len(p.Stages)-1 {
		return fmt.Errorf("%w: %d", ErrTargetNotInLastStage, p.Target)
	}

	for i, e := range g.Edges {
		if stageOf[e.From] < 0 || stageOf[e.To] < 0 {
			return fmt.Errorf("%w: edge #%d %s→%s", ErrUnstagedVertex, i, g.Label(e.From), g.Label(e.To))
		}
		if stageOf[e.To] != stageOf[e.From]+1 {
			return fmt.Errorf("%w: edge #%d %s(stage %d)→%s(stage %d)", ErrNonConsecutiveEdge,
				i, g.Label(e.From), stageOf[e.From], g.Label(e.To), stageOf[e.To])
		}
	}

	return nil
}
