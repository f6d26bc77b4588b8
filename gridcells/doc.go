// Package gridcells generates rectangular sets of cells for the planners in
// package orienteer.
//
// What:
//
//   - Uniform(x, y): x×y cells at (i, j), i∈[0,x), j∈[0,y), every reward 1.
//   - Random(x, y, opts...): the same coordinates with integer rewards drawn
//     uniformly from [MinReward, MaxReward] (default [0, 30]).
//
// Order:
//
//	Cells are emitted x-major: (0,0), (0,1), …, (0,y-1), (1,0), … so cells[0]
//	is always (0,0), the origin used by the planners.
//
// Determinism:
//
//	Random never touches a global or time-based source. Without options it
//	draws from a fixed default seed; WithSeed / WithRand pick the stream.
//	Callers wanting fresh rewards per run pass their own seed.
//
// Errors:
//
//   - ErrTooFewCells: a dimension is smaller than 1.
//
// Complexity: O(x·y) time and space.
package gridcells
