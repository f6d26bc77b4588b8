package orienteer

import (
	"math"

	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/cost"
)

// Exhaustive runs the bounded permutation search with feasibility repair.
//
// It is not a brute force over all n! orderings. Starting from the caller's
// order it walks the lexicographic permutation chain (cell.NextPermutation),
// repairs each step towards feasibility and stops after MaxCandidates distinct
// tours or 2×MaxCandidates rounds, whichever comes first.
//
// Algorithm:
//  1. working := copy of cells; candidates := {} (insertion-ordered set).
//  2. While len(candidates) < MaxCandidates:
//     a. roundTrip := working + [working[0]];
//     b. while time(roundTrip) > budget and working is non-empty: sort working
//     ascending, drop its greatest cell, rebuild roundTrip. Trimming follows
//     the sort order only, not reward or distance;
//     c. insert roundTrip into candidates;
//     d. advance working to its next permutation (wrap-around counts too);
//     e. stop once 2×MaxCandidates rounds have run (saturated at
//     math.MaxInt).
//  3. best := working + [working[0]]; then for every candidate t in insertion
//     order, best := t if reward(t) ≥ reward(best). The last inserted of
//     equally rewarding candidates therefore wins.
//
// Trimmed cells are gone for the rest of the chain: later permutations only
// reorder what survived. If trimming empties working (the cheapest single-cell
// round trip already overruns the budget) nothing is inserted, the search stops
// and the result falls back to [cells[0], cells[0]] with Degenerate set.
//
// Once the chain returns to the permutation it reached after the last trim,
// the remaining rounds can only repeat collected tours. They are skipped: the
// loop jumps to the ceiling and working is advanced to the state those rounds
// would have left, so Tour and Iterations are unchanged, and a huge
// MaxCandidates costs no more than one walk around the chain.
//
// Skipped = len(cells) − UniqueCount(Tour).
//
// Errors: ErrEmptyCells, ErrNonPositiveBudget, ErrNonPositiveCandidates,
// ErrInvalidCell, or a wrapped cost.ErrInvalidModel; all of them wrap ErrInvalidInput.
//
// Complexity: O(k·n log n) time for k ≤ min(2×MaxCandidates, n!+n) rounds
// run (trimming dominates), O(c·n) space for c ≤ MaxCandidates candidates.
func Exhaustive(cells []cell.Cell, opts Options) (Result, error) {
	if err := validateSearch(cells, opts); err != nil {
		return Result{}, err
	}

	var (
		working    = cell.Clone(cells)
		candidates = newCandidateSet(opts.MaxCandidates)
		limit      = iterationCeiling(opts.MaxCandidates)
		iterations int
		roundTrip  []cell.Cell

		// anchor is where the current untrimmed stretch of the chain began;
		// since counts the rounds run from it.
		anchor = cell.Clone(working)
		since  int
	)

	for candidates.size() < opts.MaxCandidates {
		// a) close the current permutation.
		roundTrip = cell.Close(working)
		n := len(working)

		// b) repair by trimming the greatest cell in sort order.
		for opts.Model.TotalTime(roundTrip) > opts.TimeBudget && len(working) > 0 {
			cell.Sort(working)
			working = working[:len(working)-1]
			roundTrip = cell.Close(working)
		}
		if len(working) == 0 {
			iterations++
			break
		}
		if len(working) != n {
			anchor, since = cell.Clone(working), 0
		}

		// c) collect.
		candidates.insert(roundTrip)

		// d) next permutation; wrap-around restarts the chain.
		cell.NextPermutation(working)

		// e) iteration ceiling.
		iterations++
		since++
		if iterations >= limit {
			break
		}

		// The chain is back at anchor without trimming: every further round
		// repeats a feasible, already collected tour. Skip to the ceiling and
		// leave working where the remaining rounds would have left it.
		if candidates.size() < opts.MaxCandidates && cell.EqualSeq(working, anchor) {
			for k := (limit - iterations) % since; k > 0; k-- {
				cell.NextPermutation(working)
			}
			iterations = limit
			break
		}
	}

	// 3) selection, seeded with the final permutation state.
	if candidates.size() == 0 {
		return degenerateSearch(cells, opts, iterations), nil
	}
	var (
		best       = cell.Close(working)
		bestReward = cost.TotalReward(best)
	)
	candidates.each(func(t []cell.Cell) {
		if r := cost.TotalReward(t); r >= bestReward {
			best, bestReward = t, r
		}
	})

	var (
		tour = cell.Clone(best)
		st   = opts.Model.Measure(tour)
	)

	return Result{
		Tour:       tour,
		Skipped:    len(cells) - st.UniqueCells,
		Stats:      st,
		Iterations: iterations,
		Candidates: candidates.size(),
		Degenerate: st.TotalTime > opts.TimeBudget,
	}, nil
}

// iterationCeiling returns 2×maxCandidates, saturated at math.MaxInt.
func iterationCeiling(maxCandidates int) int {
	if maxCandidates > math.MaxInt/2 {
		return math.MaxInt
	}

	return 2 * maxCandidates
}

// degenerateSearch is the result when no round trip fits the budget.
func degenerateSearch(cells []cell.Cell, opts Options, iterations int) Result {
	var (
		tour = []cell.Cell{cells[0], cells[0]}
		st   = opts.Model.Measure(tour)
	)

	return Result{
		Tour:       tour,
		Skipped:    len(cells) - st.UniqueCells,
		Stats:      st,
		Iterations: iterations,
		Degenerate: true,
	}
}
