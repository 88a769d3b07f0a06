package builder

import (
	"fmt"
)

const (
	methodCostMatrix = "CostMatrix"
	minCities        = 1
)

// CostMatrix returns a symmetric n×n matrix with a zero diagonal, drawing
// cost[i][j] for i<j (row-major) from the configured WeightFn. The default
// WeightFn yields 1 for every pair.
//
// Errors: ErrTooFewVertices for n < 1; ErrOptionViolation if the WeightFn
// produces a negative cost.
//
// Complexity: O(n²).
func CostMatrix(n int, bopts ...BuilderOption) ([][]int64, error) {
	if n < minCities {
		return nil, fmt.Errorf("%s: n=%d: %w", methodCostMatrix, n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(bopts...)

	cost := make([][]int64, n)
	for i := range cost {
		cost[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := cfg.weightFn(cfg.rng)
			if w < 0 {
				return nil, fmt.Errorf("%s: cost[%d][%d]=%d: %w", methodCostMatrix, i, j, w, ErrOptionViolation)
			}
			cost[i][j], cost[j][i] = w, w
		}
	}

	return cost, nil
}

// Cities returns n labels from the configured IDFn, for naming CostMatrix rows.
func Cities(n int, bopts ...BuilderOption) []string {
	return labels(newBuilderConfig(bopts...).idFn, max(n, 0))
}
