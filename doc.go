// Package cellroute plans reward-collecting round trips over grid cells under
// a time budget: an orienteering-style variant of the Travelling Salesman
// Problem.
//
// Every cell carries integer coordinates and a reward. A tour starts and ends
// at an origin cell; its time is a fixed service time per visited cell plus a
// travel time proportional to its Euclidean length. The planners maximize the
// collected reward while keeping the tour within the budget.
//
// Packages:
//
//	cell/       Cell value type, total order, permutations, tour helpers
//	cost/       cost model: reward, distance, time, statistics
//	orienteer/  bounded permutation search & nearest-neighbour planner
//	gridcells/  uniform and random-reward grid generators
//	report/     text and YAML rendering of tours
//	config/     YAML run configuration (viper)
//	cmd/        the cellroute command line tool
//
// Quick example:
//
//	cells, _ := gridcells.Uniform(5, 6)
//	res, err := orienteer.Greedy(cells, orienteer.DefaultOptions())
//	if err != nil {
//		// errors.Is(err, orienteer.ErrInvalidInput)
//	}
//	fmt.Println(report.FormatTour(res.Tour), res.Stats.TotalReward)
//
//	go install github.com/katalvlaran/cellroute/cmd/cellroute@latest
package cellroute
