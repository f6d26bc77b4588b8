package orienteer

import "github.com/katalvlaran/cellroute/cell"

// candidateSet is a deduplicating collection of tours keyed by exact sequence
// equality. It remembers insertion order, which is the iteration order used
// when the best candidate is selected.
type candidateSet struct {
	seen  map[string]struct{}
	tours [][]cell.Cell
}

// candidateHint caps the up-front allocation; larger sets grow on demand.
const candidateHint = 1024

func newCandidateSet(maxCandidates int) *candidateSet {
	var capacity = min(maxCandidates, candidateHint)

	return &candidateSet{
		seen:  make(map[string]struct{}, capacity),
		tours: make([][]cell.Cell, 0, capacity),
	}
}

// insert adds tour unless an equal sequence is already present.
// It reports whether the set grew. The set keeps its own copy of tour.
//
// Complexity: O(n) for the key.
func (s *candidateSet) insert(tour []cell.Cell) bool {
	var key = cell.Key(tour)
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.tours = append(s.tours, cell.Clone(tour))

	return true
}

// size returns the number of distinct tours.
func (s *candidateSet) size() int { return len(s.tours) }

// each visits tours in insertion order.
func (s *candidateSet) each(fn func(tour []cell.Cell)) {
	for _, t := range s.tours {
		fn(t)
	}
}
