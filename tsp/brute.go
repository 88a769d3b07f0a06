package tsp

import (
	"slices"

	"github.com/katalvlaran/dptrace/core"
)

// BruteForce enumerates every tour that starts at city 0 and returns the
// cheapest. Permutations of cities 1..n-1 are visited in lexicographic order,
// so ties resolve to the lexicographically smallest tour. It records no steps
// and exists as an independent cross-check for HeldKarp.
//
// Errors: the same matrix sentinels as HeldKarp, and ErrCityLimitExceeded
// for n > MaxBruteForceCities.
//
// Complexity: O(n · (n-1)!) time, O(n) space.
func BruteForce(cost [][]int64) (Result, error) {
	n, err := validateCostMatrix(cost)
	if err != nil {
		return Result{}, err
	}
	if err = validateCityLimit(n, MaxBruteForceCities); err != nil {
		return Result{}, err
	}
	if n == 1 {
		return Result{MinCost: 0, Tour: []int{0, 0}}, nil
	}

	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}

	best := core.Inf
	var bestTour []int
	for {
		total := cost[0][perm[0]] + cost[perm[n-2]][0]
		for i := 0; i+1 < len(perm); i++ {
			total += cost[perm[i]][perm[i+1]]
		}
		if total < best {
			best = total
			bestTour = append(append([]int{0}, perm...), 0)
		}
		if !nextPermutation(perm) {
			break
		}
	}

	return Result{MinCost: best, Tour: slices.Clip(bestTour)}, nil
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}
