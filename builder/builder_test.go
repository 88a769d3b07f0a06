package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dptrace/bellmanford"
	"github.com/katalvlaran/dptrace/builder"
	"github.com/katalvlaran/dptrace/dijkstra"
	"github.com/katalvlaran/dptrace/multistage"
	"github.com/katalvlaran/dptrace/tsp"
)

func TestIDFns(t *testing.T) {
	require.Equal(t, "0", builder.DefaultIDFn(0))
	require.Equal(t, "1", builder.OneBasedIDFn(0))
	require.Equal(t, "A", builder.ExcelColumnIDFn(0))
	require.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	require.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	require.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestUniformWeightFn(t *testing.T) {
	require.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	require.Equal(t, int64(-3), builder.UniformWeightFn(-3, 7)(nil))

	g, err := builder.BuildGraph(30,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(-2, 2))},
		builder.Complete())
	require.NoError(t, err)
	for _, e := range g.Edges {
		require.GreaterOrEqual(t, e.Weight, int64(-2))
		require.LessOrEqual(t, e.Weight, int64(2))
	}
}

func TestBuildGraphTopologies(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)}

	g, err := builder.BuildGraph(4, opts, builder.Path())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Labels)
	require.Len(t, g.Edges, 3)

	g, err = builder.BuildGraph(4, opts, builder.Cycle())
	require.NoError(t, err)
	require.Len(t, g.Edges, 4)
	require.Equal(t, 0, g.Edges[3].To)

	g, err = builder.BuildGraph(4, nil, builder.Complete())
	require.NoError(t, err)
	require.Len(t, g.Edges, 12)

	g, err = builder.BuildGraph(5, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	require.Empty(t, g.Edges)
}

func TestBuildGraphErrors(t *testing.T) {
	_, err := builder.BuildGraph(0, nil)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(1, nil, builder.Cycle())
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomSparseDeterministic(t *testing.T) {
	build := func() []int {
		g, err := builder.BuildGraph(12,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
			builder.RandomSparse(0.3))
		require.NoError(t, err)
		out := make([]int, 0, 3*len(g.Edges))
		for _, e := range g.Edges {
			out = append(out, e.From, e.To, int(e.Weight))
		}
		return out
	}
	require.Equal(t, build(), build())
}

// Generated graphs feed the engines directly: on non-negative weights
// Bellman-Ford and Dijkstra must agree.
func TestGeneratedGraphsCrossCheck(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.BuildGraph(10,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 20))},
			builder.RandomSparse(0.25))
		require.NoError(t, err)

		bf, err := bellmanford.BellmanFord(g, 0)
		require.NoError(t, err)
		dj, err := dijkstra.Dijkstra(g, 0)
		require.NoError(t, err)
		require.Equal(t, dj.Dist, bf.Dist, "seed %d", seed)
	}
}

func TestLayered(t *testing.T) {
	p, err := builder.Layered([]int{1, 3, 4, 3, 1}, 0.2,
		builder.WithSeed(9), builder.WithIDScheme(builder.OneBasedIDFn),
		builder.WithWeightFn(builder.UniformWeightFn(1, 9)))
	require.NoError(t, err)
	require.Equal(t, 12, p.Graph.Vertices)
	require.Equal(t, 0, p.Source)
	require.Equal(t, 11, p.Target)
	require.Equal(t, "12", p.Graph.Label(11))

	res, err := multistage.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Reachable)
	for _, stage := range p.Stages {
		for _, v := range stage {
			require.True(t, v == p.Target || res.Decision[v] >= 0, "vertex %d has no way to the target", v)
		}
	}
}

func TestLayered_RepairOnly(t *testing.T) {
	// p=0 draws no edges, so every edge comes from the in/out repair passes.
	p, err := builder.Layered([]int{1, 3, 2, 1}, 0, builder.WithSeed(4))
	require.NoError(t, err)

	in := make([]int, p.Graph.Vertices)
	out := make([]int, p.Graph.Vertices)
	for _, e := range p.Graph.Edges {
		out[e.From]++
		in[e.To]++
	}
	for s, stage := range p.Stages {
		for _, v := range stage {
			if s > 0 {
				require.Positive(t, in[v], "vertex %d has no incoming edge", v)
			}
			if s+1 < len(p.Stages) {
				require.Positive(t, out[v], "vertex %d has no outgoing edge", v)
			}
		}
	}

	res, err := multistage.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Reachable)
}

func TestLayeredErrors(t *testing.T) {
	_, err := builder.Layered([]int{1}, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Layered([]int{1, 0, 1}, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Layered([]int{2, 1}, 0.5, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Layered([]int{1, 2, 1}, 0.5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Layered([]int{1, 1, 1}, 0.5)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Layered([]int{1, 1}, -1)
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestCostMatrix(t *testing.T) {
	cost, err := builder.CostMatrix(6, builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 50)))
	require.NoError(t, err)

	hk, err := tsp.HeldKarp(cost)
	require.NoError(t, err)
	bf, err := tsp.BruteForce(cost)
	require.NoError(t, err)
	require.Equal(t, bf.MinCost, hk.MinCost)

	_, err = builder.CostMatrix(0)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.CostMatrix(3, builder.WithWeightFn(builder.ConstantWeightFn(-1)))
	require.ErrorIs(t, err, builder.ErrOptionViolation)

	require.Equal(t, []string{"A", "B", "C"}, builder.Cities(3, builder.WithIDScheme(builder.ExcelColumnIDFn)))
}
