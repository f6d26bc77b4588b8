package gridcells

import (
	"fmt"

	"github.com/katalvlaran/cellroute/cell"
)

// File-local constants: method tags and minimum dimension.
const (
	methodUniform = "Uniform"
	methodRandom  = "Random"
	minGridDim    = 1
	uniformReward = 1.0
)

// Uniform returns xDim×yDim cells in x-major order, each with reward 1.
//
// Errors: ErrTooFewCells if xDim < 1 or yDim < 1.
//
// Complexity: O(xDim·yDim).
func Uniform(xDim, yDim int) ([]cell.Cell, error) {
	if err := checkDims(methodUniform, xDim, yDim); err != nil {
		return nil, err
	}

	return fill(xDim, yDim, func() float64 { return uniformReward }), nil
}

// Random returns xDim×yDim cells in x-major order with integer rewards drawn
// uniformly from the configured inclusive range (default [0, 30]).
// Rewards are drawn in emission order, so a fixed seed fixes the whole grid.
//
// Errors: ErrTooFewCells if xDim < 1 or yDim < 1.
//
// Complexity: O(xDim·yDim).
func Random(xDim, yDim int, opts ...Option) ([]cell.Cell, error) {
	if err := checkDims(methodRandom, xDim, yDim); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return fill(xDim, yDim, func() float64 {
		return drawReward(cfg.rng, cfg.minReward, cfg.maxReward)
	}), nil
}

// checkDims validates both dimensions, failing fast before any allocation.
func checkDims(method string, xDim, yDim int) error {
	if xDim < minGridDim || yDim < minGridDim {
		return fmt.Errorf("%s: x=%d, y=%d (each must be ≥ %d): %w",
			method, xDim, yDim, minGridDim, ErrTooFewCells)
	}

	return nil
}

// fill emits cells (i, j) with i outer and j inner, asking reward for each.
func fill(xDim, yDim int, reward func() float64) []cell.Cell {
	var (
		out  = make([]cell.Cell, 0, xDim*yDim)
		i, j int
	)
	for i = 0; i < xDim; i++ {
		for j = 0; j < yDim; j++ {
			out = append(out, cell.New(i, j, reward()))
		}
	}

	return out
}
