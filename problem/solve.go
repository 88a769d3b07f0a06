package problem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dptrace/bellmanford"
	"github.com/katalvlaran/dptrace/core"
	"github.com/katalvlaran/dptrace/dijkstra"
	"github.com/katalvlaran/dptrace/multistage"
	"github.com/katalvlaran/dptrace/tsp"
)

// Instance is a decoded problem ready to be solved.
type Instance interface {
	Kind() Kind
	Name() string
	Solve(s Settings) (Solution, error)
}

// Settings tunes the engines. The zero value runs every engine with its defaults.
type Settings struct {
	// MaxCities overrides tsp.DefaultMaxCities when non-zero; it must lie in
	// [1, tsp.HardMaxCities].
	MaxCities int `mapstructure:"max_cities" validate:"omitempty,city_limit"`

	// NoImprovementSteps records Bellman-Ford relaxations that change nothing.
	NoImprovementSteps bool `mapstructure:"no_improvement_steps"`

	// EarlyExit stops Bellman-Ford passes after one without a relaxation.
	EarlyExit bool `mapstructure:"early_exit"`
}

// Field is one labelled summary value.
type Field struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Frame is the display form of one engine step: a titled table whose first
// column names each row.
type Frame struct {
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Columns     []string   `yaml:"columns" json:"columns"`
	Rows        [][]string `yaml:"rows" json:"rows"`
}

// Solution is a solved instance: the answer as summary fields and one Frame
// per engine step, in order.
type Solution struct {
	Kind    Kind    `yaml:"kind" json:"kind"`
	Name    string  `yaml:"name" json:"name"`
	Summary []Field `yaml:"summary" json:"summary"`
	Frames  []Frame `yaml:"frames" json:"frames"`
}

// Lookup returns the summary value called name.
func (s Solution) Lookup(name string) (string, bool) {
	for _, f := range s.Summary {
		if f.Name == name {
			return f.Value, true
		}
	}

	return "", false
}

// GraphInstance is a bellman-ford or dijkstra problem.
type GraphInstance struct {
	kind   Kind
	name   string
	Graph  *core.Graph
	Source int
}

func (gi *GraphInstance) Kind() Kind   { return gi.kind }
func (gi *GraphInstance) Name() string { return gi.name }

// Solve runs the instance's engine.
func (gi *GraphInstance) Solve(s Settings) (Solution, error) {
	if err := validateStruct(&s); err != nil {
		return Solution{}, err
	}
	if gi.kind == KindDijkstra {
		return gi.solveDijkstra()
	}

	var opts []bellmanford.Option
	if s.NoImprovementSteps {
		opts = append(opts, bellmanford.WithNoImprovementSteps())
	}
	if s.EarlyExit {
		opts = append(opts, bellmanford.WithEarlyExit())
	}
	res, err := bellmanford.BellmanFord(gi.Graph, gi.Source, opts...)
	if err != nil {
		return Solution{}, err
	}

	g := gi.Graph
	sol := Solution{Kind: gi.kind, Name: gi.name}
	sol.Summary = []Field{
		{"outcome", res.Outcome.String()},
		{"source", g.Label(gi.Source)},
		{"iterations", strconv.Itoa(res.Iterations)},
		{"steps", strconv.Itoa(len(res.Steps))},
	}
	if res.HasNegativeCycle() {
		sol.Summary = append(sol.Summary, Field{"cycle", joinLabels(g, res.Cycle)})
	} else {
		sol.Summary = append(sol.Summary, Field{"distances", formatDistances(g, res.Dist)})
	}

	for _, st := range res.Steps {
		var title string
		switch st.Iteration {
		case 0:
			title = "init"
		case g.Vertices:
			title = "check: " + st.Action.String()
		default:
			title = fmt.Sprintf("pass %d: %s", st.Iteration, st.Action)
		}
		sol.Frames = append(sol.Frames, Frame{
			Title:       title,
			Description: st.Description,
			Columns:     vertexColumns(g),
			Rows: [][]string{
				distRow(st.Dist),
				prevRow(g, st.Prev),
			},
		})
	}

	return sol, nil
}

func (gi *GraphInstance) solveDijkstra() (Solution, error) {
	res, err := dijkstra.Dijkstra(gi.Graph, gi.Source)
	if err != nil {
		return Solution{}, err
	}

	g := gi.Graph
	sol := Solution{Kind: gi.kind, Name: gi.name}
	sol.Summary = []Field{
		{"source", g.Label(gi.Source)},
		{"steps", strconv.Itoa(len(res.Steps))},
		{"distances", formatDistances(g, res.Dist)},
	}
	for _, st := range res.Steps {
		title := st.Action.String()
		if st.Vertex >= 0 {
			title += " " + g.Label(st.Vertex)
		}
		settled := make([]string, 0, len(st.Settled)+1)
		settled = append(settled, "settled")
		for _, ok := range st.Settled {
			if ok {
				settled = append(settled, "✓")
			} else {
				settled = append(settled, "")
			}
		}
		sol.Frames = append(sol.Frames, Frame{
			Title:       title,
			Description: st.Description,
			Columns:     vertexColumns(g),
			Rows:        [][]string{distRow(st.Dist), prevRow(g, st.Prev), settled},
		})
	}

	return sol, nil
}

// MultistageInstance is a multistage problem.
type MultistageInstance struct {
	name    string
	Problem multistage.Problem
}

func (mi *MultistageInstance) Kind() Kind   { return KindMultistage }
func (mi *MultistageInstance) Name() string { return mi.name }

// Solve runs multistage.Solve.
func (mi *MultistageInstance) Solve(s Settings) (Solution, error) {
	if err := validateStruct(&s); err != nil {
		return Solution{}, err
	}
	res, err := multistage.Solve(mi.Problem)
	if err != nil {
		return Solution{}, err
	}

	g := mi.Problem.Graph
	sol := Solution{Kind: KindMultistage, Name: mi.name}
	sol.Summary = []Field{
		{"source", g.Label(mi.Problem.Source)},
		{"target", g.Label(mi.Problem.Target)},
		{"min cost", core.FormatDist(res.MinCost)},
	}
	if res.Reachable {
		sol.Summary = append(sol.Summary, Field{"path", joinLabels(g, res.Path)})
	} else {
		sol.Summary = append(sol.Summary, Field{"path", "unreachable"})
	}

	for _, st := range res.Steps {
		rows := make([][]string, 0, len(st.Nodes))
		for _, v := range st.Nodes {
			rows = append(rows, []string{g.Label(v), core.FormatDist(st.Cost[v]), labelOrDash(g, st.Decision[v])})
		}
		sol.Frames = append(sol.Frames, Frame{
			Title:       fmt.Sprintf("stage %d", st.Stage),
			Description: st.Description,
			Columns:     []string{"vertex", "cost", "next"},
			Rows:        rows,
		})
	}

	return sol, nil
}

// TSPInstance is a tsp problem.
type TSPInstance struct {
	name   string
	Cities []string
	Cost   [][]int64
}

func (ti *TSPInstance) Kind() Kind   { return KindTSP }
func (ti *TSPInstance) Name() string { return ti.name }

// city returns the display name of city i.
func (ti *TSPInstance) city(i int) string {
	if i >= 0 && i < len(ti.Cities) {
		return ti.Cities[i]
	}
	if i < 0 {
		return "-"
	}

	return strconv.Itoa(i)
}

func (ti *TSPInstance) cities(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = ti.city(v)
	}

	return strings.Join(parts, " → ")
}

func (ti *TSPInstance) mask(m uint32) string {
	var parts []string
	for i := range len(ti.Cost) {
		if m&(1<<i) != 0 {
			parts = append(parts, ti.city(i))
		}
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// Solve runs tsp.HeldKarp.
func (ti *TSPInstance) Solve(s Settings) (Solution, error) {
	if err := validateStruct(&s); err != nil {
		return Solution{}, err
	}
	var opts []tsp.Option
	if s.MaxCities > 0 {
		opts = append(opts, tsp.WithMaxCities(s.MaxCities))
	}
	res, err := tsp.HeldKarp(ti.Cost, opts...)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{Kind: KindTSP, Name: ti.name}
	sol.Summary = []Field{
		{"min cost", strconv.FormatInt(res.MinCost, 10)},
		{"tour", ti.cities(res.Tour)},
		{"states computed", strconv.Itoa(res.StatesComputed)},
	}
	for _, st := range res.Steps {
		f := Frame{Description: st.Description}
		switch st.Kind {
		case tsp.StepClose:
			f.Title = "close"
			f.Columns = []string{"tour", "cost"}
			f.Rows = [][]string{{ti.cities(st.Tour), strconv.FormatInt(st.Cost, 10)}}
		default:
			f.Title = fmt.Sprintf("%s %s → %s", st.Kind, ti.mask(st.Mask), ti.city(st.City))
			f.Columns = []string{"visited", "end", "via", "cost"}
			f.Rows = [][]string{{ti.mask(st.Mask), ti.city(st.City), ti.city(st.Pred), core.FormatDist(st.Cost)}}
		}
		sol.Frames = append(sol.Frames, f)
	}

	return sol, nil
}

func vertexColumns(g *core.Graph) []string {
	cols := make([]string, 0, g.Vertices+1)
	cols = append(cols, "")
	for v := range g.Vertices {
		cols = append(cols, g.Label(v))
	}

	return cols
}

func distRow(dist []int64) []string {
	row := make([]string, 0, len(dist)+1)
	row = append(row, "dist")
	for _, d := range dist {
		row = append(row, core.FormatDist(d))
	}

	return row
}

func prevRow(g *core.Graph, prev []int) []string {
	row := make([]string, 0, len(prev)+1)
	row = append(row, "prev")
	for _, p := range prev {
		row = append(row, labelOrDash(g, p))
	}

	return row
}

func labelOrDash(g *core.Graph, v int) string {
	if v < 0 {
		return "-"
	}

	return g.Label(v)
}

func joinLabels(g *core.Graph, vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = g.Label(v)
	}

	return strings.Join(parts, " → ")
}

// formatDistances renders "A=0 B=4 C=∞".
func formatDistances(g *core.Graph, dist []int64) string {
	parts := make([]string, len(dist))
	for v, d := range dist {
		parts[v] = g.Label(v) + "=" + core.FormatDist(d)
	}

	return strings.Join(parts, " ")
}
