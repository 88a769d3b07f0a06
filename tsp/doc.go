// Package tsp provides an exact, step-traced Travelling Salesman solver.
//
//   - HeldKarp - the Held–Karp dynamic-programming algorithm over
//     (visited-set bitmask, current city) states, recording one Step per state.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ)
//
//   - BruteForce - enumerates all (n-1)! tours; a cross-check for small n.
//
// The input is a symmetric n×n int64 cost matrix with a zero diagonal. The
// graph is complete by construction, so a tour always exists; malformed
// matrices are rejected with errors wrapping ErrInvalidCostMatrix.
//
// Instances above DefaultMaxCities (16) are rejected with ErrCityLimitExceeded
// before any table is allocated; the state space makes larger inputs
// impractical for this approach.
//
// Tours start and end at city 0: for n cities len(Tour) == n+1.
package tsp
