// Package tsp - tour utilities shared by the exact solvers and their tests.
//
// Provided helpers:
//   - ValidateTour: enforce Hamiltonian cycle invariants.
//   - TourCost: sum the cost of a closed tour.
//   - FormatTour / FormatMask: compact printable forms for step descriptions.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==0,
//	each city v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("%w: length %d for %d cities", ErrInvalidTour, len(tour), n)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return fmt.Errorf("%w: must start and end at 0", ErrInvalidTour)
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: city %d at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}

// TourCost returns the total cost of a closed tour over cost.
//
// Complexity: O(n).
func TourCost(cost [][]int64, tour []int) (int64, error) {
	if err := ValidateTour(tour, len(cost)); err != nil {
		return 0, err
	}
	var sum int64
	for i := 0; i+1 < len(tour); i++ {
		sum += cost[tour[i]][tour[i+1]]
	}

	return sum, nil
}

// FormatTour renders a tour as "0 → 2 → 3 → 1 → 0".
func FormatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}

// FormatMask renders the cities set in mask as "{0,1,3}".
func FormatMask(mask uint32, n int) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := 0; i < n; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(i))
		first = false
	}
	b.WriteByte('}')

	return b.String()
}
