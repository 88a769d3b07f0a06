// Package dptrace records dynamic-programming algorithms one step at a time,
// so that every intermediate table can be printed, serialised or replayed.
//
// 🚀 What is in the box?
//
//	• Bellman–Ford: single-source shortest paths with negative weights and
//	  negative-cycle detection, one step per relaxation
//	• Multistage graph: backward DP over a staged DAG, one step per stage
//	• Held–Karp TSP: exact tour over (visited-set, city) states, one step per state
//	• Dijkstra: the greedy reference for non-negative graphs
//
// ✨ Guarantees shared by every engine
//
//   - Pure and synchronous: no I/O, no goroutines, no global state
//   - Every step owns its tables; later steps never rewrite earlier ones
//   - Deterministic tie-breaks, so equal input always yields deep-equal output
//   - The last step's tables equal the returned answer
//
// Layout:
//
//	core/        - Graph and Edge, validation sentinels, the Inf sentinel
//	bellmanford/ - Bellman–Ford engine
//	dijkstra/    - Dijkstra engine
//	multistage/  - multistage-graph engine
//	tsp/         - Held–Karp engine, brute-force cross-check, tour helpers
//	trace/       - cursor-based playback over a finished step list
//	builder/     - deterministic generators for engine inputs
//	problem/     - YAML/JSON problem documents → solved, labelled frames
//	cmd/dptrace  - command-line front end (solve, play, validate, generate)
//
// Quick example:
//
//	g := core.NewGraph(3, core.WithLabels("S", "A", "B"))
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, -2)
//	res, _ := bellmanford.BellmanFord(g, 0)
//	for _, st := range res.Steps {
//		fmt.Println(st.Description)
//	}
//
//	go install github.com/katalvlaran/dptrace/cmd/dptrace@latest
package dptrace
