package orienteer_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/orienteer"
	"github.com/stretchr/testify/require"
)

func TestExhaustive_Validation(t *testing.T) {
	cases := []struct {
		name  string
		cells []cell.Cell
		opts  orienteer.Options
		err   error
	}{
		{"Empty", []cell.Cell{}, optsWith(100, 5), orienteer.ErrEmptyCells},
		{"ZeroCandidates", triangle(), optsWith(100, 0), orienteer.ErrNonPositiveCandidates},
		{"NegativeCandidates", triangle(), optsWith(100, -3), orienteer.ErrNonPositiveCandidates},
		{"ZeroBudget", triangle(), optsWith(0, 5), orienteer.ErrNonPositiveBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orienteer.Exhaustive(tc.cells, tc.opts)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, orienteer.ErrInvalidInput)
		})
	}
}

func TestExhaustive_Triangle(t *testing.T) {
	a, b, c := cell.New(0, 0, 0), cell.New(0, 1, 3), cell.New(1, 0, 5)
	cases := []struct {
		name       string
		limit      int
		budget     float64
		tour       []cell.Cell
		iterations int
		candidates int
		skipped    int
		reward     float64
	}{
		// All 3! orderings are collected; the last inserted 13-reward tour wins.
		{"AllOrderings", 10, 100, []cell.Cell{c, b, a, c}, 20, 6, 0, 13},
		{"ThreeCandidates", 3, 100, []cell.Cell{c, a, b, c}, 3, 3, 0, 13},
		// The single candidate (reward 8) loses to the final permutation baseline.
		{"BaselineWins", 1, 100, []cell.Cell{b, a, c, b}, 1, 1, 0, 11},
		// Trimming drops (1,0,5), the greatest cell in sort order.
		{"Trimmed", 10, 19.5, []cell.Cell{b, a, b}, 20, 2, 1, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := optsWith(tc.budget, tc.limit)
			res, err := orienteer.Exhaustive(triangle(), opts)
			require.NoError(t, err)
			require.Equal(t, tc.tour, res.Tour)
			require.Equal(t, tc.iterations, res.Iterations)
			require.Equal(t, tc.candidates, res.Candidates)
			require.Equal(t, tc.skipped, res.Skipped)
			require.InDelta(t, tc.reward, res.Stats.TotalReward, eps)
			require.LessOrEqual(t, res.Stats.TotalTime, tc.budget)
			require.False(t, res.Degenerate)
			requireConsistentStats(t, res, opts)
		})
	}
}

func TestExhaustive_SingleCell(t *testing.T) {
	c := cell.New(0, 0, 10)

	t.Run("Feasible", func(t *testing.T) {
		res, err := orienteer.Exhaustive([]cell.Cell{c}, optsWith(100, 1))
		require.NoError(t, err)
		require.Equal(t, []cell.Cell{c, c}, res.Tour)
		require.LessOrEqual(t, res.Iterations, 2)
		require.Equal(t, 1, res.Candidates)
		require.Zero(t, res.Skipped)
		require.False(t, res.Degenerate)
	})

	t.Run("TrimmedToEmpty", func(t *testing.T) {
		res, err := orienteer.Exhaustive([]cell.Cell{c}, optsWith(5, 1))
		require.NoError(t, err)
		require.Equal(t, []cell.Cell{c, c}, res.Tour)
		require.Equal(t, 1, res.Iterations)
		require.Zero(t, res.Candidates)
		require.Zero(t, res.Skipped)
		require.True(t, res.Degenerate)
		require.Equal(t, 12.0, res.Stats.TotalTime)
	})
}

func TestExhaustive_TrimmedToEmpty_FallsBackToOrigin(t *testing.T) {
	cells := []cell.Cell{cell.New(3, 3, 1), cell.New(0, 0, 9), cell.New(5, 5, 2)}
	res, err := orienteer.Exhaustive(cells, optsWith(11, 4))
	require.NoError(t, err)
	require.Equal(t, []cell.Cell{cells[0], cells[0]}, res.Tour)
	require.Equal(t, 2, res.Skipped)
	require.True(t, res.Degenerate)
}

func TestExhaustive_IterationCeiling(t *testing.T) {
	// Two cells have only two orderings; the ceiling stops the chain.
	cells := []cell.Cell{cell.New(0, 0, 1), cell.New(1, 0, 2)}
	res, err := orienteer.Exhaustive(cells, optsWith(100, 5))
	require.NoError(t, err)
	require.Equal(t, 10, res.Iterations)
	require.Equal(t, 2, res.Candidates)
	require.Equal(t, []cell.Cell{cells[1], cells[0], cells[1]}, res.Tour)
}

func TestExhaustive_HugeCandidateCap(t *testing.T) {
	// The chain of three distinct cells has six orderings; past them only
	// repeats remain, so the search ends at the ceiling without walking it.
	a, b, c := cell.New(0, 0, 0), cell.New(0, 1, 3), cell.New(1, 0, 5)
	cases := []struct {
		name       string
		limit      int
		iterations int
	}{
		{"Large", 1 << 20, 1 << 21},
		{"HalfMaxInt", math.MaxInt / 2, math.MaxInt - 1},
		{"Saturated", math.MaxInt/2 + 1, math.MaxInt},
		{"MaxInt", math.MaxInt, math.MaxInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := optsWith(100, tc.limit)
			res, err := orienteer.Exhaustive(triangle(), opts)
			require.NoError(t, err)
			require.Equal(t, 6, res.Candidates)
			require.Equal(t, tc.iterations, res.Iterations)
			require.Equal(t, []cell.Cell{c, b, a, c}, res.Tour)
			require.InDelta(t, 13.0, res.Stats.TotalReward, eps)
			require.False(t, res.Degenerate)
			requireConsistentStats(t, res, opts)
		})
	}
}

func TestExhaustive_SkippedRepeatsMatchFullWalk(t *testing.T) {
	// A cap one above the chain length forces the skip; the final state must
	// match walking every round, here 2×7 = 14 rounds over a 6-cycle.
	a, b, c := cell.New(0, 0, 0), cell.New(0, 1, 3), cell.New(1, 0, 5)
	res, err := orienteer.Exhaustive(triangle(), optsWith(100, 7))
	require.NoError(t, err)
	require.Equal(t, 14, res.Iterations)
	require.Equal(t, 6, res.Candidates)
	require.Equal(t, []cell.Cell{c, b, a, c}, res.Tour)
}

func TestExhaustive_Bounds(t *testing.T) {
	cells := uniformGrid(3, 3)
	for _, limit := range []int{1, 2, 7, 50} {
		for _, budget := range []float64{15, 40, 80} {
			res, err := orienteer.Exhaustive(cells, optsWith(budget, limit))
			require.NoError(t, err)
			require.LessOrEqual(t, res.Candidates, limit)
			require.LessOrEqual(t, res.Iterations, 2*limit)
			require.NotEmpty(t, res.Tour)
			require.True(t, cell.IsClosed(res.Tour, res.Tour[0]))
			require.Equal(t, len(cells)-res.Stats.UniqueCells, res.Skipped)
		}
	}
}

func TestExhaustive_UniformGrid(t *testing.T) {
	cells := uniformGrid(5, 6)
	opts := optsWith(200, 1000)

	res, err := orienteer.Exhaustive(cells, opts)
	require.NoError(t, err)
	require.Equal(t, 1000, res.Candidates)
	require.Equal(t, 1000, res.Iterations)
	require.Equal(t, 29.0, res.Stats.TotalReward)
	require.Equal(t, 28, res.Stats.UniqueCells)
	require.Equal(t, 2, res.Skipped)
	require.InDelta(t, 196.26656325913908, res.Stats.TotalTime, 1e-9)
	require.LessOrEqual(t, res.Stats.TotalTime, opts.TimeBudget)
}

func TestExhaustive_DoesNotMutateInput(t *testing.T) {
	cells := []cell.Cell{cell.New(2, 2, 1), cell.New(0, 0, 4), cell.New(1, 3, 2)}
	snapshot := cell.Clone(cells)

	_, err := orienteer.Exhaustive(cells, optsWith(30, 4))
	require.NoError(t, err)
	require.Equal(t, snapshot, cells)
}

func TestExhaustive_Deterministic(t *testing.T) {
	cells := uniformGrid(3, 4)
	opts := optsWith(70, 40)

	first, err := orienteer.Exhaustive(cells, opts)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := orienteer.Exhaustive(cells, opts)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
