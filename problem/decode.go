package problem

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/katalvlaran/dptrace/core"
	"github.com/katalvlaran/dptrace/multistage"
)

// EdgeSpec is one directed edge between two labelled vertices.
type EdgeSpec struct {
	From   string `mapstructure:"from" validate:"required"`
	To     string `mapstructure:"to" validate:"required"`
	Weight int64  `mapstructure:"weight"`
}

// GraphSpec is the spec of the bellman-ford and dijkstra kinds.
type GraphSpec struct {
	Vertices []string   `mapstructure:"vertices" validate:"required,min=1,unique,dive,required"`
	Edges    []EdgeSpec `mapstructure:"edges" validate:"dive"`
	Source   string     `mapstructure:"source" validate:"required"`
}

// MultistageSpec is the spec of the multistage kind. Vertices are declared
// through their stages.
type MultistageSpec struct {
	Stages [][]string `mapstructure:"stages" validate:"required,min=1,dive,min=1,dive,required"`
	Edges  []EdgeSpec `mapstructure:"edges" validate:"dive"`
	Source string     `mapstructure:"source" validate:"required"`
	Target string     `mapstructure:"target" validate:"required"`
}

// TSPSpec is the spec of the tsp kind. Cities is optional; when present it
// names the rows of Cost in order.
type TSPSpec struct {
	Cities []string  `mapstructure:"cities" validate:"omitempty,unique,dive,required"`
	Cost   [][]int64 `mapstructure:"cost" validate:"required,min=1"`
}

// Decode resolves doc into a typed Instance.
//
// Steps, in order:
//  1. doc.Kind is parsed (ErrUnknownKind).
//  2. doc.Spec is decoded onto the kind's spec struct; unknown keys and
//     mistyped values are rejected (ErrInvalidSpec).
//  3. validate tags are checked (ErrInvalidSpec).
//  4. Labels are resolved into vertex indices (ErrInvalidSpec).
//
// Structural checks that belong to an engine (negative costs, stage
// layering, asymmetric matrices, ...) are left to Solve.
func Decode(doc *Document) (Instance, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidSpec)
	}
	kind, err := ParseKind(doc.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindBellmanFord, KindDijkstra:
		var spec GraphSpec
		if err := decodeSpec(doc.Spec, &spec); err != nil {
			return nil, err
		}

		return newGraphInstance(kind, doc.Name, spec)

	case KindMultistage:
		var spec MultistageSpec
		if err := decodeSpec(doc.Spec, &spec); err != nil {
			return nil, err
		}

		return newMultistageInstance(doc.Name, spec)

	default:
		var spec TSPSpec
		if err := decodeSpec(doc.Spec, &spec); err != nil {
			return nil, err
		}

		return newTSPInstance(doc.Name, spec)
	}
}

// decodeSpec maps raw onto out with mapstructure and validates the result.
func decodeSpec(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       wholeNumberHook,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	return validateStruct(out)
}

// wholeNumberHook converts numbers bound for integer fields, rejecting
// fractional values and JSON numbers that do not fit an int64.
func wholeNumberHook(_, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}

	switch v := data.(type) {
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("%s is not an integer", v)
		}
		return n, nil
	}

	return data, nil
}

func floatToInt(f float64) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is not an integer", f)
	}

	return int64(f), nil
}

// labelIndex maps labels to vertex indices.
type labelIndex map[string]int

func newLabelIndex(labels []string) (labelIndex, error) {
	idx := make(labelIndex, len(labels))
	for i, l := range labels {
		if _, ok := idx[l]; ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidSpec, core.ErrDuplicateLabel, l)
		}
		idx[l] = i
	}

	return idx, nil
}

func (li labelIndex) lookup(field, label string) (int, error) {
	v, ok := li[label]
	if !ok {
		return -1, fmt.Errorf("%w: %s references unknown vertex %q", ErrInvalidSpec, field, label)
	}

	return v, nil
}

// buildGraph creates a labelled graph and adds edges in document order.
func buildGraph(labels []string, edges []EdgeSpec) (*core.Graph, labelIndex, error) {
	idx, err := newLabelIndex(labels)
	if err != nil {
		return nil, nil, err
	}

	g := core.NewGraph(len(labels), core.WithLabels(labels...))
	for i, e := range edges {
		from, err := idx.lookup(fmt.Sprintf("edges[%d].from", i), e.From)
		if err != nil {
			return nil, nil, err
		}
		to, err := idx.lookup(fmt.Sprintf("edges[%d].to", i), e.To)
		if err != nil {
			return nil, nil, err
		}
		if err := g.AddEdge(from, to, e.Weight); err != nil {
			return nil, nil, err
		}
	}

	return g, idx, nil
}

func newGraphInstance(kind Kind, name string, spec GraphSpec) (*GraphInstance, error) {
	g, idx, err := buildGraph(spec.Vertices, spec.Edges)
	if err != nil {
		return nil, err
	}
	src, err := idx.lookup("source", spec.Source)
	if err != nil {
		return nil, err
	}

	return &GraphInstance{kind: kind, name: name, Graph: g, Source: src}, nil
}

func newMultistageInstance(name string, spec MultistageSpec) (*MultistageInstance, error) {
	var labels []string
	stages := make([][]int, len(spec.Stages))
	for s, stage := range spec.Stages {
		stages[s] = make([]int, len(stage))
		for i, l := range stage {
			stages[s][i] = len(labels)
			labels = append(labels, l)
		}
	}

	g, idx, err := buildGraph(labels, spec.Edges)
	if err != nil {
		return nil, err
	}
	src, err := idx.lookup("source", spec.Source)
	if err != nil {
		return nil, err
	}
	dst, err := idx.lookup("target", spec.Target)
	if err != nil {
		return nil, err
	}

	return &MultistageInstance{
		name: name,
		Problem: multistage.Problem{
			Graph:  g,
			Stages: stages,
			Source: src,
			Target: dst,
		},
	}, nil
}

func newTSPInstance(name string, spec TSPSpec) (*TSPInstance, error) {
	if len(spec.Cities) > 0 && len(spec.Cities) != len(spec.Cost) {
		return nil, fmt.Errorf("%w: %d cities for a %d-row cost matrix", ErrInvalidSpec, len(spec.Cities), len(spec.Cost))
	}

	return &TSPInstance{name: name, Cities: spec.Cities, Cost: spec.Cost}, nil
}
