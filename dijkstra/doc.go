// Package dijkstra provides a traced implementation of Dijkstra's
// shortest-path algorithm on core.Graph values with non-negative weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Every settle and every successful relaxation is recorded as a Step carrying
//     its own copy of the distance, predecessor and settled tables.
//
// When to use:
//
//   - As the reference answer for bellmanford on graphs without negative edges:
//     both engines must agree on every distance.
//   - To contrast greedy settling with Bellman-Ford's repeated passes in a
//     step-by-step walkthrough.
//
// Key features:
//
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Deterministic: equal distances are popped in increasing vertex order and
//     edges are relaxed in input order.
//
// Error handling (sentinel errors):
//
//   - core.ErrNilGraph / core.ErrNoVertices / core.ErrInvalidEdgeReference from validation.
//   - ErrSourceOutOfRange: source is not a vertex.
//   - ErrNegativeWeight: any edge has a negative weight (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised (via panic) by the option constructors.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, source int, opts ...Option) (Result, error)
//
//	  - Result.Dist[v]: minimal distance, or core.Inf if unreachable.
//	  - Result.Prev[v]: predecessor on one shortest path, -1 for the source or unreachable v.
//	  - Result.Steps:   ordered snapshots; the last step is ActionComplete.
package dijkstra
