// Package tsp - validation utilities shared by the exact solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n²) worst-case where n is the matrix size.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/dptrace/core"
)

// validateCostMatrix enforces the Held-Karp input contract:
//   - at least one row, every row of length n,
//   - zero diagonal,
//   - non-negative, finite off-diagonal entries,
//   - cost[i][j] == cost[j][i].
//
// Returns n on success.
//
// Complexity: O(n²).
func validateCostMatrix(cost [][]int64) (int, error) {
	n := len(cost)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	for i := 0; i < n; i++ {
		if len(cost[i]) != n {
			return 0, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonSquare, i, len(cost[i]), n)
		}
	}
	for i := 0; i < n; i++ {
		if cost[i][i] != 0 {
			return 0, fmt.Errorf("%w: cost[%d][%d]=%d", ErrNonZeroDiagonal, i, i, cost[i][i])
		}
		for j := i + 1; j < n; j++ {
			if cost[i][j] < 0 || cost[j][i] < 0 {
				return 0, fmt.Errorf("%w: between %d and %d", ErrNegativeCost, i, j)
			}
			if cost[i][j] == core.Inf {
				return 0, fmt.Errorf("%w: cost[%d][%d] is the infinity sentinel", ErrInvalidCostMatrix, i, j)
			}
			if cost[i][j] != cost[j][i] {
				return 0, fmt.Errorf("%w: cost[%d][%d]=%d, cost[%d][%d]=%d",
					ErrAsymmetric, i, j, cost[i][j], j, i, cost[j][i])
			}
		}
	}

	return n, nil
}

// validateCityLimit rejects n above limit before any table is allocated.
func validateCityLimit(n, limit int) error {
	if n > limit {
		return fmt.Errorf("%w: %d cities, limit %d", ErrCityLimitExceeded, n, limit)
	}

	return nil
}
