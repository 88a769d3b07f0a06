package core

import (
	"fmt"
	"strconv"
)

// AddEdge appends the edge from→to with the given weight.
// It fails fast with ErrInvalidEdgeReference if either endpoint is out of range.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: %d→%d (vertices=%d)", ErrInvalidEdgeReference, from, to, g.Vertices)
	}
	g.Edges = append(g.Edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.Vertices
}

// Validate checks the graph invariants: non-nil, at least one vertex,
// every edge endpoint in range, and labels (if any) complete and unique.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Vertices <= 0 {
		return ErrNoVertices
	}
	for i, e := range g.Edges {
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			return fmt.Errorf("%w: edge #%d %d→%d (vertices=%d)", ErrInvalidEdgeReference, i, e.From, e.To, g.Vertices)
		}
	}
	if len(g.Labels) == 0 {
		return nil
	}
	if len(g.Labels) != g.Vertices {
		return fmt.Errorf("%w: %d labels for %d vertices", ErrLabelCount, len(g.Labels), g.Vertices)
	}
	seen := make(map[string]struct{}, len(g.Labels))
	for _, l := range g.Labels {
		if _, ok := seen[l]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// Label returns the display name of v, or its decimal index when the graph
// carries no labels.
func (g *Graph) Label(v int) string {
	if v >= 0 && v < len(g.Labels) {
		return g.Labels[v]
	}

	return strconv.Itoa(v)
}

// Outgoing groups edge indices by tail vertex. Within each bucket the
// original input order is preserved, which the engines rely on for their
// tie-break policy.
//
// Complexity: O(V + E).
func (g *Graph) Outgoing() [][]int {
	out := make([][]int, g.Vertices)
	for i, e := range g.Edges {
		out[e.From] = append(out[e.From], i)
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	c := &Graph{Vertices: g.Vertices}
	if g.Labels != nil {
		c.Labels = append([]string(nil), g.Labels...)
	}
	if g.Edges != nil {
		c.Edges = append([]Edge(nil), g.Edges...)
	}

	return c
}

// AddInf returns a+b, saturating at Inf. An Inf operand yields Inf.
func AddInf(a, b int64) int64 {
	if a == Inf || b == Inf {
		return Inf
	}
	if b > 0 && a > Inf-b {
		return Inf
	}

	return a + b
}

// FormatDist renders a distance, using "∞" for Inf.
func FormatDist(d int64) string {
	if d == Inf {
		return "∞"
	}

	return strconv.FormatInt(d, 10)
}
