package bellmanford_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dptrace/bellmanford"
	"github.com/katalvlaran/dptrace/core"
	"github.com/katalvlaran/dptrace/dijkstra"
)

// textbook builds A→B(4), A→D(2), B→C(3), B→D(−2), C→E(2), D→E(5).
func textbook(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(5, core.WithLabels("A", "B", "C", "D", "E"))
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 3, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: -2},
		{From: 2, To: 4, Weight: 2},
		{From: 3, To: 4, Weight: 5},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func TestBellmanFord_Textbook(t *testing.T) {
	res, err := bellmanford.BellmanFord(textbook(t), 0)
	require.NoError(t, err)

	require.False(t, res.HasNegativeCycle())
	require.Equal(t, bellmanford.OutcomeShortestPaths, res.Outcome)
	require.Equal(t, []int64{0, 4, 7, 2, 7}, res.Dist)
	require.Equal(t, []int{-1, 0, 1, 0, 3}, res.Prev)
	require.Equal(t, 4, res.Iterations)

	// init + 5 relaxations (E is relaxed twice) + complete
	require.Len(t, res.Steps, 7)
	require.Equal(t, bellmanford.ActionInit, res.Steps[0].Action)
	require.Equal(t, bellmanford.ActionComplete, res.Steps[6].Action)

	e := res.Steps[5]
	require.Equal(t, bellmanford.ActionRelax, e.Action)
	require.Equal(t, 5, e.EdgeIndex)
	require.Equal(t, int64(9), e.OldDist)
	require.Equal(t, int64(7), e.NewDist)

	path, ok := bellmanford.Path(res, 4)
	require.True(t, ok)
	require.Equal(t, []int{0, 3, 4}, path)
}

func TestBellmanFord_LastStepMatchesResult(t *testing.T) {
	res, err := bellmanford.BellmanFord(textbook(t), 0)
	require.NoError(t, err)

	last := res.Steps[len(res.Steps)-1]
	require.Equal(t, res.Dist, last.Dist)
	require.Equal(t, res.Prev, last.Prev)
}

func TestBellmanFord_StepsDoNotAlias(t *testing.T) {
	res, err := bellmanford.BellmanFord(textbook(t), 0)
	require.NoError(t, err)

	// Step 4 relaxed E to 9; the later relaxation to 7 must not leak back.
	require.Equal(t, int64(9), res.Steps[4].Dist[4])
	require.Equal(t, core.Inf, res.Steps[0].Dist[4])

	res.Steps[1].Dist[1] = -100
	require.Equal(t, int64(4), res.Dist[1])
	require.Equal(t, int64(4), res.Steps[2].Dist[1])
}

func TestBellmanFord_Idempotent(t *testing.T) {
	g := textbook(t)
	a, err := bellmanford.BellmanFord(g, 0, bellmanford.WithNoImprovementSteps())
	require.NoError(t, err)
	b, err := bellmanford.BellmanFord(g.Clone(), 0, bellmanford.WithNoImprovementSteps())
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBellmanFord_NoImprovementSteps(t *testing.T) {
	res, err := bellmanford.BellmanFord(textbook(t), 0, bellmanford.WithNoImprovementSteps())
	require.NoError(t, err)

	// every edge is examined in each of the 4 passes, plus init and complete
	require.Len(t, res.Steps, 2+4*6)
	var relax, none int
	for _, s := range res.Steps {
		switch s.Action {
		case bellmanford.ActionRelax:
			relax++
		case bellmanford.ActionNoImprovement:
			none++
			require.Equal(t, s.OldDist, s.NewDist)
		}
	}
	require.Equal(t, 5, relax)
	require.Equal(t, 19, none)
}

func TestBellmanFord_EarlyExit(t *testing.T) {
	res, err := bellmanford.BellmanFord(textbook(t), 0, bellmanford.WithEarlyExit())
	require.NoError(t, err)
	require.Equal(t, 2, res.Iterations)
	require.Equal(t, []int64{0, 4, 7, 2, 7}, res.Dist)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	// 0→1(1), 1→2(-1), 2→3(-1), 3→1(-1), 3→4(2)
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -1))
	require.NoError(t, g.AddEdge(2, 3, -1))
	require.NoError(t, g.AddEdge(3, 1, -1))
	require.NoError(t, g.AddEdge(3, 4, 2))

	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle())
	require.Equal(t, "negative-cycle", res.Outcome.String())

	last := res.Steps[len(res.Steps)-1]
	require.Equal(t, bellmanford.ActionNegativeCycle, last.Action)
	require.Equal(t, g.Vertices, last.Iteration)
	require.Equal(t, res.Dist, last.Dist)

	// the recovered cycle is closed, lies on {1,2,3} and sums to a negative weight
	require.NotEmpty(t, res.Cycle)
	require.Equal(t, res.Cycle[0], res.Cycle[len(res.Cycle)-1])
	weight := map[[2]int]int64{}
	for _, e := range g.Edges {
		weight[[2]int{e.From, e.To}] = e.Weight
	}
	var sum int64
	for i := 0; i+1 < len(res.Cycle); i++ {
		w, ok := weight[[2]int{res.Cycle[i], res.Cycle[i+1]}]
		require.True(t, ok, "cycle uses a missing edge %v", res.Cycle)
		sum += w
	}
	require.Negative(t, sum)

	_, ok := bellmanford.Path(res, 4)
	require.False(t, ok)
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 1, -1))

	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle())
	require.Equal(t, []int{1, 1}, res.Cycle)

	// a single vertex with a negative loop: zero passes, caught by detection
	one := core.NewGraph(1)
	require.NoError(t, one.AddEdge(0, 0, -2))
	res, err = bellmanford.BellmanFord(one, 0)
	require.NoError(t, err)
	require.True(t, res.HasNegativeCycle())
	require.Equal(t, 0, res.Iterations)
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	// the cycle 2⇄3 is negative but not reachable from 0
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(2, 3, -4))
	require.NoError(t, g.AddEdge(3, 2, 1))

	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.False(t, res.HasNegativeCycle())
	require.Equal(t, []int64{0, 5, core.Inf, core.Inf}, res.Dist)
	require.Equal(t, []int{-1, 0, -1, -1}, res.Prev)
}

func TestBellmanFord_ParallelEdges(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 1, 6))

	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Dist[1])
	// both improving parallel edges produced their own step
	require.Len(t, res.Steps, 4)
}

func TestBellmanFord_Validation(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil, 0)
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = bellmanford.BellmanFord(&core.Graph{}, 0)
	require.ErrorIs(t, err, core.ErrNoVertices)

	bad := &core.Graph{Vertices: 2, Edges: []core.Edge{{From: 0, To: 3, Weight: 1}}}
	_, err = bellmanford.BellmanFord(bad, 0)
	require.ErrorIs(t, err, core.ErrInvalidEdgeReference)

	_, err = bellmanford.BellmanFord(core.NewGraph(2), 5)
	require.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
}

// randomGraph builds a graph with non-negative weights from a fixed seed.
func randomGraph(rng *rand.Rand, n, m int) *core.Graph {
	g := core.NewGraph(n)
	for range m {
		g.Edges = append(g.Edges, core.Edge{
			From:   rng.IntN(n),
			To:     rng.IntN(n),
			Weight: int64(rng.IntN(20)),
		})
	}

	return g
}

func TestBellmanFord_AgreesWithDijkstra(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	for i := 0; i < 50; i++ {
		n := 2 + rng.IntN(10)
		g := randomGraph(rng, n, rng.IntN(3*n))
		src := rng.IntN(n)

		bf, err := bellmanford.BellmanFord(g, src)
		require.NoError(t, err)
		dj, err := dijkstra.Dijkstra(g, src)
		require.NoError(t, err)

		require.False(t, bf.HasNegativeCycle())
		require.Equal(t, dj.Dist, bf.Dist, "graph %d: %+v", i, g.Edges)
	}
}

func TestBellmanFord_RelaxedInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	for i := 0; i < 30; i++ {
		n := 2 + rng.IntN(8)
		g := randomGraph(rng, n, 2*n)
		// a few negative weights on a DAG-ish subset keep cycles rare; skip if one appears
		for j := range g.Edges {
			if g.Edges[j].From < g.Edges[j].To && rng.IntN(3) == 0 {
				g.Edges[j].Weight = -g.Edges[j].Weight
			}
		}

		res, err := bellmanford.BellmanFord(g, 0)
		require.NoError(t, err)
		if res.HasNegativeCycle() {
			continue
		}
		for _, e := range g.Edges {
			if res.Dist[e.From] == core.Inf {
				continue
			}
			require.LessOrEqual(t, res.Dist[e.To], res.Dist[e.From]+e.Weight)
		}
	}
}
