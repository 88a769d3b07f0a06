package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failure inside one.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option producing values the target cannot accept,
// such as negative tsp costs.
var ErrOptionViolation = errors.New("builder: invalid option value")
