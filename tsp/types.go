package tsp

import (
	"errors"
	"fmt"
)

// DefaultMaxCities bounds HeldKarp input size; the state space is O(n·2ⁿ).
const DefaultMaxCities = 16

// HardMaxCities is the largest value WithMaxCities accepts.
const HardMaxCities = 20

// MaxBruteForceCities bounds BruteForce, which enumerates (n-1)! tours.
const MaxBruteForceCities = 10

// ErrInvalidCostMatrix is the umbrella for every cost-matrix contract violation.
// The specific errors below wrap it, so errors.Is(err, ErrInvalidCostMatrix)
// matches any of them.
var ErrInvalidCostMatrix = errors.New("tsp: invalid cost matrix")

// Sentinel errors.
var (
	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = fmt.Errorf("%w: empty", ErrInvalidCostMatrix)

	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = fmt.Errorf("%w: not square", ErrInvalidCostMatrix)

	// ErrNonZeroDiagonal indicates cost[i][i] != 0.
	ErrNonZeroDiagonal = fmt.Errorf("%w: non-zero diagonal", ErrInvalidCostMatrix)

	// ErrAsymmetric indicates cost[i][j] != cost[j][i].
	ErrAsymmetric = fmt.Errorf("%w: not symmetric", ErrInvalidCostMatrix)

	// ErrNegativeCost indicates a negative off-diagonal entry.
	ErrNegativeCost = fmt.Errorf("%w: negative cost", ErrInvalidCostMatrix)

	// ErrCityLimitExceeded indicates more cities than the configured bound.
	// No work is done when it is returned.
	ErrCityLimitExceeded = errors.New("tsp: city limit exceeded")

	// ErrBadMaxCities indicates a WithMaxCities argument outside [1, HardMaxCities].
	ErrBadMaxCities = errors.New("tsp: MaxCities must be in [1, HardMaxCities]")

	// ErrInvalidTour indicates a tour that is not a closed Hamiltonian cycle from city 0.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)

// StepKind classifies a Held-Karp step.
type StepKind int

const (
	StepBase  StepKind = iota // state ({0}, 0) with cost 0
	StepState                 // one (mask, city) DP state computed
	StepClose                 // tour closed back to city 0
)

var stepKindNames = [...]string{"base", "state", "close"}

// String implements fmt.Stringer.
func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return "unknown"
	}

	return stepKindNames[k]
}

// Step records one DP state (or the base/close bookends).
//
// For StepState: Cost is the minimum cost of starting at 0, visiting exactly
// the cities in Mask and ending at City; Pred is the city visited just before.
// For StepClose: City is the last city before returning to 0, Cost is the
// tour cost and Tour is an owned copy of the optimal tour.
type Step struct {
	Kind        StepKind
	Mask        uint32
	City        int
	Pred        int
	Cost        int64
	Tour        []int
	Description string
}

// Result holds the outcome of a TSP solver.
type Result struct {
	// MinCost is the total cost of the optimal cycle.
	MinCost int64

	// Tour is the sequence of city indices, starting and ending at 0.
	// For n cities, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// StatesComputed counts the (mask, city) pairs evaluated after the base state.
	StatesComputed int

	// Steps is empty for BruteForce.
	Steps []Step
}

// Options configures HeldKarp.
type Options struct {
	MaxCities int
}

// Option is a functional option for HeldKarp.
type Option func(*Options)

// WithMaxCities overrides DefaultMaxCities.
// Panics with ErrBadMaxCities if n is outside [1, HardMaxCities].
func WithMaxCities(n int) Option {
	return func(o *Options) {
		if n <= 0 || n > HardMaxCities {
			panic(ErrBadMaxCities.Error())
		}
		o.MaxCities = n
	}
}

// DefaultOptions returns Options{MaxCities: DefaultMaxCities}.
func DefaultOptions() Options {
	return Options{MaxCities: DefaultMaxCities}
}
