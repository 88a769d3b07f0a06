// Package bellmanford implements a step-traced Bellman-Ford single-source
// shortest-path engine for directed graphs with signed edge weights.
//
// Overview:
//
//   - dist[source]=0, every other vertex starts at core.Inf.
//   - V-1 passes over the edge list, in input order, relaxing every edge.
//   - One detection pass: if any edge still relaxes, a negative cycle is
//     reachable from the source.
//
// Every relaxation is recorded as a Step holding its own copy of the distance
// and predecessor tables, so a presentation layer can step back and forth
// without recomputing anything. The last step always carries the same tables
// as the returned Result.
//
// Negative cycles are a result (Result.Outcome == OutcomeNegativeCycle), never
// an error. Only malformed input is rejected:
//
//   - core.ErrNilGraph, core.ErrNoVertices, core.ErrInvalidEdgeReference
//   - ErrSourceOutOfRange
//
// Edge cases:
//
//   - Vertices with no path from the source keep core.Inf and predecessor -1.
//   - Negative self-loops are caught by the detection pass.
//   - Parallel edges are relaxed independently, no deduplication.
//
// Complexity: O(V·E) time.
package bellmanford
