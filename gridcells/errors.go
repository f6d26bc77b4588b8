package gridcells

import "errors"

// ErrTooFewCells indicates a grid dimension smaller than one.
// Callers branch with errors.Is; context is attached with %w.
var ErrTooFewCells = errors.New("gridcells: grid dimensions must be at least 1×1")
