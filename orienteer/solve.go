// Package orienteer - unified dispatcher.
//
// Solve routes to the construction named by Options.Algo; SolveAll runs every
// construction on the same input so their tours can be compared side by side.
// Both validate through the selected algorithm, so callers see the same
// sentinels as when calling Greedy or Exhaustive directly.
package orienteer

import (
	"fmt"

	"github.com/katalvlaran/cellroute/cell"
)

// Solve runs the algorithm selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm for an unknown opts.Algo, otherwise those of
// Greedy or Exhaustive.
func Solve(cells []cell.Cell, opts Options) (Result, error) {
	switch opts.Algo {
	case NearestNeighbor:
		return Greedy(cells, opts)
	case BoundedPermutation:
		return Exhaustive(cells, opts)
	default:
		return Result{}, fmt.Errorf("Solve(%v): %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
}

// Outcome pairs an algorithm with its result.
type Outcome struct {
	Algo   Algorithm
	Result Result
}

// SolveAll runs algos in the given order, sequentially, on the same cells and
// options (opts.Algo is ignored). Without algos it runs every entry of
// Algorithms. The first error aborts the run.
func SolveAll(cells []cell.Cell, opts Options, algos ...Algorithm) ([]Outcome, error) {
	if len(algos) == 0 {
		algos = Algorithms
	}

	var out = make([]Outcome, 0, len(algos))
	for _, algo := range algos {
		opts.Algo = algo
		res, err := Solve(cells, opts)
		if err != nil {
			return nil, fmt.Errorf("SolveAll: %s: %w", algo, err)
		}
		out = append(out, Outcome{Algo: algo, Result: res})
	}

	return out, nil
}
