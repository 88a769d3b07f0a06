package bellmanford

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dptrace/core"
)

// BellmanFord computes single-source shortest distances on g from source,
// recording a step for every successful relaxation.
//
// Steps, in order:
//  1. One ActionInit step (dist[source]=0, every other vertex core.Inf).
//  2. For each pass 1..V-1 and each edge in input order: an ActionRelax step
//     when dist[u]+w < dist[v]; with WithNoImprovementSteps also an
//     ActionNoImprovement step otherwise.
//  3. One terminal step: ActionNegativeCycle for the first edge that still
//     relaxes in the detection pass, ActionComplete if none does.
//
// A negative cycle is a result, not an error. Errors are returned only for
// caller contract violations:
//   - core.ErrNilGraph, core.ErrNoVertices, core.ErrInvalidEdgeReference (from Validate).
//   - ErrSourceOutOfRange if source is not a vertex of g.
//
// Complexity: O(V·E) time, O(V·(V+S)) space where S is the number of steps
// (every step owns a copy of the tables).
func BellmanFord(g *core.Graph, source int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := g.Validate(); err != nil {
		return Result{}, err
	}
	if !g.HasVertex(source) {
		return Result{}, fmt.Errorf("%w: %d (vertices=%d)", ErrSourceOutOfRange, source, g.Vertices)
	}

	r := newRunner(g, source, cfg)
	r.init()
	r.relaxAll()
	r.detect()

	return Result{
		Outcome:    r.outcome,
		Source:     source,
		Dist:       slices.Clone(r.dist),
		Prev:       slices.Clone(r.prev),
		Cycle:      r.cycle,
		Iterations: r.iterations,
		Steps:      r.steps,
	}, nil
}

// runner holds the mutable state of a single BellmanFord execution.
type runner struct {
	g       *core.Graph
	source  int
	options Options

	dist       []int64
	prev       []int
	steps      []Step
	iterations int
	outcome    Outcome
	cycle      []int
}

func newRunner(g *core.Graph, source int, cfg Options) *runner {
	return &runner{
		g:       g,
		source:  source,
		options: cfg,
		dist:    make([]int64, g.Vertices),
		prev:    make([]int, g.Vertices),
		steps:   make([]Step, 0, 2+len(g.Edges)),
	}
}

// init sets dist[*]=Inf, prev[*]=-1, dist[source]=0 and records the first step.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = core.Inf
		r.prev[v] = -1
	}
	r.dist[r.source] = 0

	r.record(Step{
		Iteration: 0,
		Action:    ActionInit,
		EdgeIndex: -1,
		OldDist:   core.Inf,
		NewDist:   0,
		Description: fmt.Sprintf("Initialize: dist[%s] = 0, all other distances = ∞",
			r.g.Label(r.source)),
	})
}

// relaxAll runs the V-1 relaxation passes.
func (r *runner) relaxAll() {
	for it := 1; it <= r.g.Vertices-1; it++ {
		r.iterations = it
		changed := false
		for i, e := range r.g.Edges {
			if r.relax(it, i, e) {
				changed = true
			}
		}
		if !changed && r.options.EarlyExit {
			return
		}
	}
}

// relax tries a single edge and reports whether dist[e.To] improved.
func (r *runner) relax(it, idx int, e core.Edge) bool {
	old := r.dist[e.To]
	if r.dist[e.From] == core.Inf {
		if r.options.RecordNoImprovement {
			r.record(Step{
				Iteration: it, Action: ActionNoImprovement, EdgeIndex: idx, Edge: e,
				OldDist: old, NewDist: old,
				Description: fmt.Sprintf("Pass %d: skip %s, %s is still unreachable",
					it, r.edgeString(e), r.g.Label(e.From)),
			})
		}

		return false
	}

	cand := core.AddInf(r.dist[e.From], e.Weight)
	if cand >= old {
		if r.options.RecordNoImprovement {
			r.record(Step{
				Iteration: it, Action: ActionNoImprovement, EdgeIndex: idx, Edge: e,
				OldDist: old, NewDist: old,
				Description: fmt.Sprintf("Pass %d: %s gives %d, no improvement over %s",
					it, r.edgeString(e), cand, core.FormatDist(old)),
			})
		}

		return false
	}

	r.dist[e.To] = cand
	r.prev[e.To] = e.From
	r.record(Step{
		Iteration: it, Action: ActionRelax, EdgeIndex: idx, Edge: e,
		OldDist: old, NewDist: cand,
		Description: fmt.Sprintf("Pass %d: relax %s, dist[%s] %s → %d",
			it, r.edgeString(e), r.g.Label(e.To), core.FormatDist(old), cand),
	})

	return true
}

// detect runs the extra pass over all edges and records the terminal step.
func (r *runner) detect() {
	final := r.g.Vertices
	for i, e := range r.g.Edges {
		if r.dist[e.From] == core.Inf {
			continue
		}
		cand := core.AddInf(r.dist[e.From], e.Weight)
		if cand >= r.dist[e.To] {
			continue
		}
		r.outcome = OutcomeNegativeCycle
		r.cycle = r.findCycle(e)
		r.record(Step{
			Iteration: final, Action: ActionNegativeCycle, EdgeIndex: i, Edge: e,
			OldDist: r.dist[e.To], NewDist: cand,
			Description: fmt.Sprintf("Negative cycle detected: %s still relaxes (%d < %s)",
				r.edgeString(e), cand, core.FormatDist(r.dist[e.To])),
		})

		return
	}

	r.outcome = OutcomeShortestPaths
	r.record(Step{
		Iteration: final, Action: ActionComplete, EdgeIndex: -1,
		Description: "Completed: no negative cycle reachable from the source",
	})
}

// findCycle recovers a negative cycle given an edge that still relaxes.
// It works on a copy of prev with prev[v]=u applied; walking back V times
// from v lands on a vertex of the cycle.
func (r *runner) findCycle(e core.Edge) []int {
	prev := slices.Clone(r.prev)
	prev[e.To] = e.From

	x := e.To
	for range r.g.Vertices {
		if prev[x] < 0 {
			return nil
		}
		x = prev[x]
	}

	cycle := []int{x}
	for cur := prev[x]; cur != x; cur = prev[cur] {
		if cur < 0 || len(cycle) > r.g.Vertices {
			return nil
		}
		cycle = append(cycle, cur)
	}
	cycle = append(cycle, x)
	slices.Reverse(cycle)

	return cycle
}

// record appends s with fresh copies of the live tables.
func (r *runner) record(s Step) {
	s.Dist = slices.Clone(r.dist)
	s.Prev = slices.Clone(r.prev)
	r.steps = append(r.steps, s)
}

func (r *runner) edgeString(e core.Edge) string {
	return fmt.Sprintf("%s→%s(%d)", r.g.Label(e.From), r.g.Label(e.To), e.Weight)
}

// Path reconstructs the source→v path from res.Prev.
// ok is false if v is unreachable, out of range, or res has a negative cycle.
func Path(res Result, v int) (path []int, ok bool) {
	if res.HasNegativeCycle() || v < 0 || v >= len(res.Dist) || res.Dist[v] == core.Inf {
		return nil, false
	}
	for cur := v; cur != -1; cur = res.Prev[cur] {
		path = append(path, cur)
		if len(path) > len(res.Dist) {
			return nil, false
		}
	}
	slices.Reverse(path)

	return path, true
}
