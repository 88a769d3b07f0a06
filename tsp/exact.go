package tsp

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/katalvlaran/dptrace/core"
)

// HeldKarp solves the symmetric Travelling Salesman Problem exactly with the
// Held–Karp dynamic-programming algorithm, starting and ending at city 0.
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the cities in mask
// (bit 0 always set) and end at j. Masks are processed by increasing subset
// size, then increasing numeric value; for each mask the end city j runs over
// the set bits except 0 in increasing order. Every such (mask, j) pair is one
// StepState step.
//
// Tie-break: the lowest predecessor index wins, and when closing the tour the
// lowest last city wins.
//
// Errors:
//   - ErrInvalidCostMatrix (wrapped by ErrEmptyMatrix, ErrNonSquare,
//     ErrNonZeroDiagonal, ErrAsymmetric, ErrNegativeCost).
//   - ErrCityLimitExceeded if n > Options.MaxCities.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ) plus one Step per state.
func HeldKarp(cost [][]int64, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, err := validateCostMatrix(cost)
	if err != nil {
		return Result{}, err
	}
	if err = validateCityLimit(n, cfg.MaxCities); err != nil {
		return Result{}, err
	}

	// --- 1. Allocate DP and parent tables ---
	full := uint32(1)<<n - 1
	dp := make([][]int64, full+1)
	parent := make([][]int, full+1)
	for mask := range dp {
		dp[mask] = make([]int64, n)
		parent[mask] = make([]int, n)
		for j := 0; j < n; j++ {
			dp[mask][j] = core.Inf
			parent[mask][j] = -1
		}
	}

	const start = uint32(1)
	dp[start][0] = 0

	// base + one step per (mask, city) state + close
	capacity := 2
	if n > 1 {
		capacity += (n - 1) << (n - 2)
	}
	steps := make([]Step, 0, capacity)
	steps = append(steps, Step{
		Kind: StepBase, Mask: start, City: 0, Pred: -1, Cost: 0,
		Description: fmt.Sprintf("Base: state (%s, 0) costs 0", FormatMask(start, n)),
	})

	// --- 2. Fill DP by increasing subset size ---
	states := 0
	for size := 2; size <= n; size++ {
		for mask := start; mask <= full; mask++ {
			if mask&start == 0 || bits.OnesCount32(mask) != size {
				continue
			}
			for j := 1; j < n; j++ {
				if mask&(1<<j) == 0 {
					continue
				}
				prevMask := mask ^ (1 << j)
				for k := 0; k < n; k++ {
					if prevMask&(1<<k) == 0 || dp[prevMask][k] == core.Inf {
						continue
					}
					cand := core.AddInf(dp[prevMask][k], cost[k][j])
					if cand < dp[mask][j] {
						dp[mask][j] = cand
						parent[mask][j] = k
					}
				}
				states++
				steps = append(steps, Step{
					Kind: StepState, Mask: mask, City: j, Pred: parent[mask][j], Cost: dp[mask][j],
					Description: fmt.Sprintf("State (%s, %d): cost %d via %d",
						FormatMask(mask, n), j, dp[mask][j], parent[mask][j]),
				})
			}
		}
	}

	// --- 3. Close the tour by returning to 0 ---
	if n == 1 {
		tour := []int{0, 0}
		steps = append(steps, Step{
			Kind: StepClose, Mask: full, City: 0, Pred: -1, Cost: 0, Tour: slices.Clone(tour),
			Description: "Close: a single city, tour 0 → 0 costs 0",
		})

		return Result{MinCost: 0, Tour: tour, Steps: steps}, nil
	}

	best := core.Inf
	last := -1
	for j := 1; j < n; j++ {
		total := core.AddInf(dp[full][j], cost[j][0])
		if total < best {
			best = total
			last = j
		}
	}

	// --- 4. Reconstruct tour from parent table ---
	tour := make([]int, n+1)
	mask := full
	j := last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	steps = append(steps, Step{
		Kind: StepClose, Mask: full, City: last, Pred: -1, Cost: best, Tour: slices.Clone(tour),
		Description: fmt.Sprintf("Close: return %d → 0, tour %s costs %d", last, FormatTour(tour), best),
	})

	return Result{MinCost: best, Tour: tour, StatesComputed: states, Steps: steps}, nil
}
