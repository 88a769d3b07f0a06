// Package core defines the Graph and Edge types shared by the step-trace
// engines, together with the sentinel errors used to reject malformed input.
//
// A Graph is a plain value: vertices are the integers 0..Vertices-1 and edges
// are kept in the exact order they were supplied. Engines read a Graph and
// never mutate it, so a caller may hand the same Graph to several engines.
//
// Errors:
//
//	ErrNilGraph             - graph pointer is nil.
//	ErrNoVertices           - graph has no vertices.
//	ErrInvalidEdgeReference - an edge endpoint is outside [0, Vertices).
//	ErrVertexOutOfRange     - a vertex argument is outside [0, Vertices).
//	ErrLabelCount           - len(Labels) is neither 0 nor Vertices.
//	ErrDuplicateLabel       - two vertices share a label.
package core

import (
	"errors"
	"math"
)

// Inf is the "infinite" distance sentinel used by every engine.
const Inf int64 = math.MaxInt64

// Sentinel errors for graph validation.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to an engine.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNoVertices indicates that a source or target was required but the graph is empty.
	ErrNoVertices = errors.New("core: graph has no vertices")

	// ErrInvalidEdgeReference indicates an edge endpoint outside [0, Vertices).
	ErrInvalidEdgeReference = errors.New("core: edge references a missing vertex")

	// ErrVertexOutOfRange indicates a vertex argument outside [0, Vertices).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLabelCount indicates that Labels is non-empty and its length differs from Vertices.
	ErrLabelCount = errors.New("core: label count does not match vertex count")

	// ErrDuplicateLabel indicates that two vertices carry the same label.
	ErrDuplicateLabel = errors.New("core: duplicate vertex label")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   int   // tail vertex
	To     int   // head vertex
	Weight int64 // signed weight
}

// Graph is a directed weighted multigraph over the vertices 0..Vertices-1.
//
// Parallel edges and self-loops are allowed; they are relaxed independently
// in input order. Labels are optional display names used by presentation code.
type Graph struct {
	Vertices int
	Labels   []string
	Edges    []Edge
}

// GraphOption configures a Graph created by NewGraph.
type GraphOption func(g *Graph)

// WithLabels attaches display labels to the vertices, in index order.
func WithLabels(labels ...string) GraphOption {
	return func(g *Graph) {
		g.Labels = append([]string(nil), labels...)
	}
}

// NewGraph creates an empty Graph with n vertices and no edges.
func NewGraph(n int, opts ...GraphOption) *Graph {
	g := &Graph{Vertices: n}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
