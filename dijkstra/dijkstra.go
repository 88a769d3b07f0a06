// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/dptrace/core"
)

// Dijkstra computes shortest distances from source to all other vertices of g,
// recording a step for every settled vertex and every successful relaxation.
//
// Preconditions and validation (in order):
//  1. g must pass core.Graph.Validate.
//  2. source must be a vertex of g (ErrSourceOutOfRange).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) plus one table copy per step.
func Dijkstra(g *core.Graph, source int, opts ...Option) (Result, error) {
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

	// Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: edge %s→%s weight=%d",
				ErrNegativeWeight, g.Label(e.From), g.Label(e.To), e.Weight)
		}
	}

	r := &runner{
		g:       g,
		source:  source,
		options: cfg,
		out:     g.Outgoing(),
		dist:    make([]int64, g.Vertices),
		prev:    make([]int, g.Vertices),
		visited: make([]bool, g.Vertices),
		pq:      make(nodePQ, 0, g.Vertices),
	}
	r.init()
	r.process()

	return Result{
		Source: source,
		Dist:   slices.Clone(r.dist),
		Prev:   slices.Clone(r.prev),
		Steps:  r.steps,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	source  int
	options Options
	out     [][]int // edge indices by tail vertex

	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
	steps   []Step
	capped  bool // some path was cut off by MaxDistance
}

// init sets up initial distances and pushes source=0 into the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = core.Inf
		r.prev[v] = -1
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})

	r.record(Step{
		Action: ActionInit,
		Vertex: -1,
		Description: fmt.Sprintf("Initialize: dist[%s] = 0, all other distances = ∞",
			r.g.Label(r.source)),
	})
}

// process is the core loop: pop the closest unsettled vertex, settle it, relax its edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			r.capped = true
			break
		}

		r.visited[u] = true
		r.record(Step{
			Action:      ActionSettle,
			Vertex:      u,
			Description: fmt.Sprintf("Settle %s at distance %d", r.g.Label(u), item.dist),
		})
		r.relax(u)
	}

	desc := "Completed: every reachable vertex is settled"
	if r.capped {
		desc = fmt.Sprintf("Stopped: paths longer than MaxDistance %d were not explored", r.options.MaxDistance)
	}
	r.record(Step{
		Action:      ActionComplete,
		Vertex:      -1,
		Description: desc,
	})
}

// relax examines each edge leaving u in input order.
func (r *runner) relax(u int) {
	for _, idx := range r.out[u] {
		e := r.g.Edges[idx]
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := core.AddInf(r.dist[u], e.Weight)
		if newDist >= r.dist[e.To] {
			continue
		}
		if newDist > r.options.MaxDistance {
			r.capped = true
			continue
		}

		old := r.dist[e.To]
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
		r.record(Step{
			Action: ActionRelax,
			Vertex: e.To,
			Edge:   e,
			Description: fmt.Sprintf("Relax %s→%s(%d): dist[%s] %s → %d",
				r.g.Label(e.From), r.g.Label(e.To), e.Weight, r.g.Label(e.To), core.FormatDist(old), newDist),
		})
	}
}

func (r *runner) record(s Step) {
	s.Dist = slices.Clone(r.dist)
	s.Prev = slices.Clone(r.prev)
	s.Settled = slices.Clone(r.visited)
	r.steps = append(r.steps, s)
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by lower vertex index.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
