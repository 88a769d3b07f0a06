// Package core provides the minimal graph model consumed by the dptrace
// step-trace engines.
//
// The model is deliberately flat:
//
//   - Vertices are the integers 0..Vertices-1.
//   - Edges are directed, carry a signed int64 weight, and keep input order.
//   - Parallel edges and self-loops are allowed.
//   - Labels are optional, unique display names for presentation layers.
//
// Engines accept a *Graph, call Validate, and never mutate it. Use Clone if
// you need an independent copy before editing a graph that is still being
// traced elsewhere.
//
// Distances use Inf (math.MaxInt64) as the "unreachable" sentinel; AddInf
// performs saturating addition so Inf never wraps around.
//
// Quick ASCII example:
//
//	  0 ──4──▶ 1
//	  │        │
//	  2       -2
//	  ▼        ▼
//	  3 ◀──────┘
//
//	g := core.NewGraph(4, core.WithLabels("A", "B", "C", "D"))
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 3, 2)
//	_ = g.AddEdge(1, 3, -2)
package core
