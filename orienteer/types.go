package orienteer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/cost"
)

// ErrInvalidInput is the root of every validation error returned by this
// package. Use errors.Is(err, ErrInvalidInput) to detect any of them.
var ErrInvalidInput = errors.New("orienteer: invalid input")

// Specific validation sentinels; each wraps ErrInvalidInput.
var (
	// ErrEmptyCells indicates the cell slice has no origin.
	ErrEmptyCells = fmt.Errorf("%w: cell sequence is empty", ErrInvalidInput)
	// ErrNonPositiveBudget indicates TimeBudget ≤ 0 or NaN.
	ErrNonPositiveBudget = fmt.Errorf("%w: time budget must be positive", ErrInvalidInput)
	// ErrNonPositiveCandidates indicates MaxCandidates ≤ 0 for the bounded search.
	ErrNonPositiveCandidates = fmt.Errorf("%w: max candidates must be positive", ErrInvalidInput)
	// ErrInvalidCell indicates a cell with a NaN or infinite reward.
	ErrInvalidCell = fmt.Errorf("%w: cell reward must be finite", ErrInvalidInput)
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = fmt.Errorf("%w: unsupported algorithm", ErrInvalidInput)
)

// Algorithm selects the tour construction used by Solve.
type Algorithm int

const (
	// NearestNeighbor is the greedy constructive heuristic (Greedy).
	NearestNeighbor Algorithm = iota
	// BoundedPermutation is the bounded permutation search (Exhaustive).
	BoundedPermutation
)

// Algorithms lists every supported algorithm in a stable order.
var Algorithms = []Algorithm{BoundedPermutation, NearestNeighbor}

// String returns the canonical name used by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case NearestNeighbor:
		return "greedy"
	case BoundedPermutation:
		return "search"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
// Accepted: "greedy", "nearest-neighbor", "search", "exhaustive", "brute-force".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy", "nearest-neighbor", "nn":
		return NearestNeighbor, nil
	case "search", "exhaustive", "brute-force":
		return BoundedPermutation, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnsupportedAlgorithm)
	}
}

// Defaults of the original planning scenario.
const (
	// DefaultTimeBudget is the time limit of one round trip.
	DefaultTimeBudget = 200.0
	// DefaultMaxCandidates caps the distinct tours collected by Exhaustive.
	DefaultMaxCandidates = 1000
)

// Options configures both algorithms.
type Options struct {
	// Model prices a tour; see package cost.
	Model cost.Model
	// TimeBudget is the maximum total time of a feasible tour (> 0).
	TimeBudget float64
	// MaxCandidates caps distinct candidate tours (Exhaustive only, > 0).
	MaxCandidates int
	// Algo selects the construction used by Solve.
	Algo Algorithm
}

// DefaultOptions returns the default model, a budget of 200, a cap of 1000
// candidates and the greedy algorithm.
func DefaultOptions() Options {
	return Options{
		Model:         cost.DefaultModel(),
		TimeBudget:    DefaultTimeBudget,
		MaxCandidates: DefaultMaxCandidates,
		Algo:          NearestNeighbor,
	}
}

// Result is the outcome of one construction.
type Result struct {
	// Tour is the planned visiting order. Greedy tours are always closed at
	// cells[0]; Exhaustive tours are closed at their own first cell.
	Tour []cell.Cell
	// Skipped is a diagnostic: cells left unvisited by Greedy, or
	// len(cells) − UniqueCount(Tour) for Exhaustive.
	Skipped int
	// Stats is the statistics tuple of Tour under Options.Model.
	Stats cost.Stats
	// Iterations counts repair-and-permute rounds (Exhaustive only).
	Iterations int
	// Candidates counts distinct candidate tours collected (Exhaustive only).
	Candidates int
	// Degenerate marks a tour whose total time exceeds the budget: the
	// origin's own round trip overruns it, or (Exhaustive) the unrepaired
	// final permutation won the selection.
	Degenerate bool
}
