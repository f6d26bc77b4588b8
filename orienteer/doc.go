// Package orienteer plans reward-collecting round trips under a time budget:
// an orienteering-style variant of the Travelling Salesman Problem on cells
// with integer coordinates and scalar rewards.
//
// Two independent constructions share the cost model of package cost:
//
//   - Greedy (NearestNeighbor): repeatedly extends the tour towards the
//     closest unvisited cell, after checking that the extended tour can still
//     return to the origin within the budget.
//
//   - Complexity: O(n²) time, O(n) space.
//
//   - Exhaustive (BoundedPermutation): walks a bounded chain of
//     lexicographic permutations of the input, trims every candidate until its
//     round trip fits the budget, and keeps the most rewarding distinct tour.
//     It explores at most 2×MaxCandidates permutations, not all n!.
//
//   - Complexity: O(k·n² log n) time for k = 2×MaxCandidates, O(c·n) space for
//     c distinct candidates.
//
// The origin is always cells[0] of the caller's order. Inputs are copied on
// entry; results never alias caller slices.
//
// Errors are sentinels wrapping ErrInvalidInput: an empty cell slice, a
// non-positive budget or candidate cap, an invalid cost model or a non-finite
// reward. Infeasible budgets are not errors: they yield degenerate tours with
// Result.Degenerate set.
//
// No logging, no panics on user input, no goroutines: given the same input
// order and options every call returns the same tour.
package orienteer
