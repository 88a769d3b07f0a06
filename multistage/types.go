package multistage

import (
	"errors"

	"github.com/katalvlaran/dptrace/core"
)

// Sentinel errors for malformed multistage problems.
var (
	// ErrNoStages indicates that Problem.Stages is empty.
	ErrNoStages = errors.New("multistage: no stages")

	// ErrEmptyStage indicates a stage without vertices.
	ErrEmptyStage = errors.New("multistage: empty stage")

	// ErrDuplicateStageVertex indicates a vertex listed in more than one stage (or twice in one).
	ErrDuplicateStageVertex = errors.New("multistage: vertex appears in more than one stage")

	// ErrSourceNotInFirstStage indicates that Source is not a member of stage 0.
	ErrSourceNotInFirstStage = errors.New("multistage: source is not in the first stage")

	// ErrTargetNotInLastStage indicates that Target is not a member of the last stage.
	ErrTargetNotInLastStage = errors.New("multistage: target is not in the last stage")

	// ErrUnstagedVertex indicates an edge touching a vertex that belongs to no stage.
	ErrUnstagedVertex = errors.New("multistage: edge touches a vertex outside every stage")

	// ErrNonConsecutiveEdge indicates an edge that does not go from stage i to stage i+1.
	ErrNonConsecutiveEdge = errors.New("multistage: edge does not connect consecutive stages")
)

// Problem is a multistage graph instance.
//
// Stages partitions (a subset of) the vertices of Graph; stage 0 holds the
// source and the last stage holds the target. Every edge must go from some
// stage i to stage i+1.
type Problem struct {
	Graph  *core.Graph
	Stages [][]int
	Source int
	Target int
}

// Step records the costs computed while processing one stage.
//
// Nodes lists the vertices of Stage in stage order. Cost and Decision are
// owned copies of the full tables after the stage was processed.
type Step struct {
	Stage       int
	Nodes       []int
	Cost        []int64
	Decision    []int
	Description string
}

// Result is the outcome of Solve.
type Result struct {
	MinCost   int64   // core.Inf when the target is unreachable
	Reachable bool    // false when MinCost is core.Inf
	Path      []int   // source … target, nil when unreachable
	Cost      []int64 // Cost[v] = cheapest cost from v to target, core.Inf if none
	Decision  []int   // Decision[v] = next vertex on that path, -1 if none
	Steps     []Step  // last-stage base case first, stage 0 last
}
