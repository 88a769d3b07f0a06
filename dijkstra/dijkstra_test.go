package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dptrace/core"
	"github.com/katalvlaran/dptrace/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	_, err := dijkstra.Dijkstra(core.NewGraph(2), 2)
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, -5))
	_, err := dijkstra.Dijkstra(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_BadOptionsPanic(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	// A→B(1), B→C(2), A→C(5): C is cheaper through B.
	g := core.NewGraph(3, core.WithLabels("A", "B", "C"))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3}, res.Dist)
	require.Equal(t, []int{-1, 0, 1}, res.Prev)

	first, last := res.Steps[0], res.Steps[len(res.Steps)-1]
	require.Equal(t, dijkstra.ActionInit, first.Action)
	require.Equal(t, dijkstra.ActionComplete, last.Action)
	require.Equal(t, res.Dist, last.Dist)
	require.Equal(t, []bool{true, true, true}, last.Settled)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 4))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, core.Inf, res.Dist[2])
	require.Equal(t, -1, res.Prev[2])
}

func TestDijkstra_Thresholds(t *testing.T) {
	// 0→1(1), 1→2(100), 0→2(50), 2→3(1)
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 100))
	require.NoError(t, g.AddEdge(0, 2, 50))
	require.NoError(t, g.AddEdge(2, 3, 1))

	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	require.Equal(t, core.Inf, res.Dist[2])

	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(50))
	require.NoError(t, err)
	require.Equal(t, int64(50), res.Dist[2])
	require.Equal(t, core.Inf, res.Dist[3])
	last := res.Steps[len(res.Steps)-1]
	require.Equal(t, dijkstra.ActionComplete, last.Action)
	require.Equal(t, "Stopped: paths longer than MaxDistance 50 were not explored", last.Description)

	res, err = dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, "Completed: every reachable vertex is settled", res.Steps[len(res.Steps)-1].Description)
}

func TestDijkstra_StepsAreSnapshots(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)

	// the first relaxation of vertex 1 saw 7; the final table holds 2
	var seen bool
	for _, s := range res.Steps {
		if s.Action == dijkstra.ActionRelax && s.Vertex == 1 && s.Dist[1] == 7 {
			seen = true
		}
	}
	require.True(t, seen)
	require.Equal(t, int64(2), res.Dist[1])
	require.Equal(t, "settle", dijkstra.ActionSettle.String())
}
