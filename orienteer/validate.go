// Package orienteer - validation shared by both constructions.
//
// Validation runs once at the entry of each algorithm. It is deterministic and
// side-effect free; failures are sentinels wrapping ErrInvalidInput.
package orienteer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cellroute/cell"
)

// validateCommon checks the inputs both algorithms share.
//
// Priority: empty cells, budget, model, rewards. A +Inf budget is valid and
// means unlimited time; NaN is not positive and is rejected.
//
// Complexity: O(n).
func validateCommon(cells []cell.Cell, opts Options) error {
	if len(cells) == 0 {
		return ErrEmptyCells
	}
	if !(opts.TimeBudget > 0) {
		return ErrNonPositiveBudget
	}
	if err := opts.Model.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var i int
	for i = range cells {
		if math.IsNaN(cells[i].Reward) || math.IsInf(cells[i].Reward, 0) {
			return fmt.Errorf("cells[%d]=%v: %w", i, cells[i], ErrInvalidCell)
		}
	}

	return nil
}

// validateSearch adds the candidate cap check of the bounded search.
//
// Complexity: O(n).
func validateSearch(cells []cell.Cell, opts Options) error {
	if err := validateCommon(cells, opts); err != nil {
		return err
	}
	if opts.MaxCandidates <= 0 {
		return ErrNonPositiveCandidates
	}

	return nil
}
