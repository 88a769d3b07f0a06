// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrSourceOutOfRange if the source is not a vertex of the graph.
//	– ErrNegativeWeight   if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/dptrace/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrSourceOutOfRange indicates that the source vertex is not in [0, Vertices).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Action classifies a step record.
type Action int

const (
	ActionInit     Action = iota // tables initialised
	ActionSettle                 // vertex popped from the heap, its distance is final
	ActionRelax                  // dist[v] improved through an edge
	ActionComplete               // heap exhausted or MaxDistance reached
)

var actionNames = [...]string{"init", "settle", "relax", "complete"}

// String implements fmt.Stringer.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}

	return actionNames[a]
}

// Step is an immutable snapshot; Dist, Prev and Settled are owned copies.
type Step struct {
	Action      Action
	Vertex      int // settled vertex or relaxed head, -1 for init/complete
	Edge        core.Edge
	Dist        []int64
	Prev        []int
	Settled     []bool
	Description string
}

// Result is the outcome of Dijkstra.
type Result struct {
	Source int
	Dist   []int64 // core.Inf if unreachable
	Prev   []int   // -1 if none
	Steps  []Step
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
