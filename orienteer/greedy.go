package orienteer

import (
	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/cost"
)

// Greedy builds one closed tour with the nearest-neighbour heuristic.
//
// Algorithm:
//  1. origin := cells[0]; tour := [origin]; unvisited := cells[1:] (copies of
//     the origin, if any, are ordinary unvisited cells).
//  2. While unvisited is non-empty:
//     a. pick the unvisited cell nearest to the tail of tour. The scan starts
//     from the last unvisited cell as seed and replaces it only on a strictly
//     smaller distance, so the first minimal cell in scan order wins ties;
//     b. if time(tour + [candidate, origin]) > budget, stop: the candidate and
//     everything still unvisited are skipped;
//     c. otherwise commit the candidate and remove it from unvisited.
//  3. Append origin to close the tour.
//
// Guarantee: time(Tour) ≤ budget whenever at least one cell besides the origin
// was committed. If the very first probe fails, Tour is [origin, origin] and its
// time is computed, not assumed; Degenerate reports whether it overruns.
//
// Errors: ErrEmptyCells, ErrNonPositiveBudget, ErrInvalidCell, or a wrapped
// cost.ErrInvalidModel; all of them wrap ErrInvalidInput.
//
// Complexity: O(n²) time, O(n) space.
func Greedy(cells []cell.Cell, opts Options) (Result, error) {
	if err := validateCommon(cells, opts); err != nil {
		return Result{}, err
	}

	var (
		origin    = cells[0]
		unvisited = cell.Clone(cells[1:])
		tour      = make([]cell.Cell, 1, len(cells)+1)
		probe     = make([]cell.Cell, 0, len(cells)+2)
	)
	tour[0] = origin

	var (
		last, idx int
		best, d   float64
		i         int
	)
	for len(unvisited) > 0 {
		// 2a) nearest unvisited cell; strict "<" keeps the first minimum.
		last = len(unvisited) - 1
		idx = last
		best = cost.Distance(tour[len(tour)-1], unvisited[last])
		for i = 0; i < len(unvisited); i++ {
			d = cost.Distance(tour[len(tour)-1], unvisited[i])
			// A tie with the seed still goes to the earlier cell.
			if d < best || (d == best && idx == last) {
				best = d
				idx = i
			}
		}

		// 2b) look-ahead: the extended tour must still make it home in time.
		probe = append(probe[:0], tour...)
		probe = append(probe, unvisited[idx], origin)
		if opts.Model.TotalTime(probe) > opts.TimeBudget {
			break
		}

		// 2c) commit, keeping the relative order of the remaining cells.
		tour = append(tour, unvisited[idx])
		unvisited = append(unvisited[:idx], unvisited[idx+1:]...)
	}

	// 3) close the tour.
	tour = append(tour, origin)

	var st = opts.Model.Measure(tour)

	return Result{
		Tour:       tour,
		Skipped:    len(unvisited),
		Stats:      st,
		Degenerate: st.TotalTime > opts.TimeBudget,
	}, nil
}
