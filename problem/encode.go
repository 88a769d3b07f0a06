package problem

import (
	"github.com/katalvlaran/dptrace/core"
	"github.com/katalvlaran/dptrace/multistage"
)

// GraphDocument returns a bellman-ford or dijkstra document describing g.
// Vertices are named by g.Label.
func GraphDocument(kind Kind, name string, g *core.Graph, source int) *Document {
	vertices := make([]string, g.Vertices)
	for v := range vertices {
		vertices[v] = g.Label(v)
	}

	return &Document{
		Kind: string(kind),
		Name: name,
		Spec: map[string]any{
			"vertices": vertices,
			"source":   g.Label(source),
			"edges":    edgeSpecs(g),
		},
	}
}

// MultistageDocument returns a multistage document describing p.
func MultistageDocument(name string, p multistage.Problem) *Document {
	g := p.Graph
	stages := make([][]string, len(p.Stages))
	for s, stage := range p.Stages {
		stages[s] = make([]string, len(stage))
		for i, v := range stage {
			stages[s][i] = g.Label(v)
		}
	}

	return &Document{
		Kind: string(KindMultistage),
		Name: name,
		Spec: map[string]any{
			"stages": stages,
			"source": g.Label(p.Source),
			"target": g.Label(p.Target),
			"edges":  edgeSpecs(g),
		},
	}
}

// TSPDocument returns a tsp document; cities may be nil.
func TSPDocument(name string, cities []string, cost [][]int64) *Document {
	spec := map[string]any{"cost": cost}
	if len(cities) > 0 {
		spec["cities"] = cities
	}

	return &Document{Kind: string(KindTSP), Name: name, Spec: spec}
}

func edgeSpecs(g *core.Graph) []map[string]any {
	edges := make([]map[string]any, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = map[string]any{
			"from":   g.Label(e.From),
			"to":     g.Label(e.To),
			"weight": e.Weight,
		}
	}

	return edges
}
