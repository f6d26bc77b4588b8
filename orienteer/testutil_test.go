// Package orienteer_test holds helpers shared by the *_test.go files of this
// package: small fixed instances and invariant checks.
package orienteer_test

import (
	"testing"

	"github.com/katalvlaran/cellroute/cell"
	"github.com/katalvlaran/cellroute/orienteer"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// triangle returns origin (0,0,0) followed by (1,0,5) and (0,1,3).
func triangle() []cell.Cell {
	return []cell.Cell{cell.New(0, 0, 0), cell.New(1, 0, 5), cell.New(0, 1, 3)}
}

// uniformGrid returns x×y cells with reward 1, x-major like gridcells.Uniform.
func uniformGrid(x, y int) []cell.Cell {
	out := make([]cell.Cell, 0, x*y)
	for i := 0; i < x; i++ {
		for j := 0; j < y; j++ {
			out = append(out, cell.New(i, j, 1))
		}
	}
	return out
}

// optsWith returns DefaultOptions with the given budget and candidate cap.
func optsWith(budget float64, maxCandidates int) orienteer.Options {
	opts := orienteer.DefaultOptions()
	opts.TimeBudget = budget
	opts.MaxCandidates = maxCandidates
	return opts
}

// requireConsistentStats checks that res.Stats describes res.Tour.
func requireConsistentStats(t *testing.T, res orienteer.Result, opts orienteer.Options) {
	t.Helper()
	want := opts.Model.Measure(res.Tour)
	require.InDelta(t, want.TotalReward, res.Stats.TotalReward, eps)
	require.InDelta(t, want.TotalDistance, res.Stats.TotalDistance, eps)
	require.InDelta(t, want.TotalTime, res.Stats.TotalTime, eps)
	require.Equal(t, want.UniqueCells, res.Stats.UniqueCells)
}
