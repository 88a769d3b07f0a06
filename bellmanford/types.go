package bellmanford

import (
	"errors"

	"github.com/katalvlaran/dptrace/core"
)

// ErrSourceOutOfRange indicates that the source vertex is not in [0, Vertices).
var ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

// Outcome tags the two possible results of a run.
type Outcome int

const (
	// OutcomeShortestPaths means no negative cycle is reachable from the source;
	// Dist holds true shortest distances.
	OutcomeShortestPaths Outcome = iota

	// OutcomeNegativeCycle means the detection pass found an edge that still
	// relaxes. Dist holds the table after V-1 iterations and Cycle lists one cycle.
	OutcomeNegativeCycle
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == OutcomeNegativeCycle {
		return "negative-cycle"
	}

	return "shortest-paths"
}

// Action classifies a step record.
type Action int

const (
	ActionInit          Action = iota // tables initialised
	ActionRelax                       // dist[v] improved through an edge
	ActionNoImprovement               // edge examined, dist[v] unchanged (opt-in)
	ActionNegativeCycle               // detection pass found a relaxing edge
	ActionComplete                    // detection pass found nothing
)

var actionNames = [...]string{"init", "relax", "no-improvement", "negative-cycle", "complete"}

// String implements fmt.Stringer.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}

	return actionNames[a]
}

// Step is an immutable snapshot of the run at one point.
//
// Dist and Prev are fresh copies owned by the step; later relaxations never
// touch them. EdgeIndex is -1 for steps that are not about a single edge.
type Step struct {
	Iteration   int // 0 for init, 1..V-1 for relaxation passes, V for the detection pass
	Action      Action
	EdgeIndex   int
	Edge        core.Edge
	OldDist     int64
	NewDist     int64
	Dist        []int64
	Prev        []int
	Description string
}

// Result is the outcome of BellmanFord.
type Result struct {
	Outcome    Outcome
	Source     int
	Dist       []int64 // Dist[v] = shortest distance, core.Inf if unreachable
	Prev       []int   // Prev[v] = predecessor on a shortest path, -1 if none
	Cycle      []int   // closed cycle [a, …, a]; nil unless OutcomeNegativeCycle
	Iterations int     // relaxation passes actually run
	Steps      []Step
}

// HasNegativeCycle reports whether a negative cycle reachable from the source was found.
func (r Result) HasNegativeCycle() bool { return r.Outcome == OutcomeNegativeCycle }

// Options configures a BellmanFord run.
type Options struct {
	// RecordNoImprovement adds an ActionNoImprovement step for every edge
	// examined that does not shorten a distance.
	RecordNoImprovement bool

	// EarlyExit stops the V-1 passes after a pass with no relaxation.
	// The detection pass always runs.
	EarlyExit bool
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// WithNoImprovementSteps records a step for every non-improving edge.
func WithNoImprovementSteps() Option {
	return func(o *Options) { o.RecordNoImprovement = true }
}

// WithEarlyExit stops relaxation passes once a full pass changes nothing.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// DefaultOptions returns the textbook configuration: all V-1 passes, only
// successful relaxations recorded.
func DefaultOptions() Options {
	return Options{}
}
