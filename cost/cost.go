package cost

import (
	"errors"
	"math"

	"github.com/katalvlaran/cellroute/cell"
)

// Defaults of the original planning scenario.
const (
	// DefaultServiceTime is the time spent searching one cell.
	DefaultServiceTime = 6.0
	// DefaultTravelSpeed is the time spent travelling one unit of distance.
	DefaultTravelSpeed = 0.5
)

// ErrInvalidModel indicates a negative, NaN or infinite model parameter.
var ErrInvalidModel = errors.New("cost: model parameters must be finite and non-negative")

// Model holds the two constants of the time function.
type Model struct {
	// ServiceTime is charged once per element of a sequence.
	ServiceTime float64
	// TravelSpeed is charged per unit of Euclidean distance travelled.
	TravelSpeed float64
}

// DefaultModel returns Model{ServiceTime: 6, TravelSpeed: 0.5}.
func DefaultModel() Model {
	return Model{
		ServiceTime: DefaultServiceTime,
		TravelSpeed: DefaultTravelSpeed,
	}
}

// Validate returns ErrInvalidModel unless both parameters are finite and ≥ 0.
//
// Complexity: O(1).
func (m Model) Validate() error {
	if !finiteNonNegative(m.ServiceTime) || !finiteNonNegative(m.TravelSpeed) {
		return ErrInvalidModel
	}

	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// TotalReward sums Reward over every element of seq, duplicates included.
//
// Complexity: O(n).
func TotalReward(seq []cell.Cell) float64 {
	var sum float64
	for i := range seq {
		sum += seq[i].Reward
	}

	return sum
}

// Distance returns the Euclidean distance between a and b. Coordinate deltas
// are computed on integers and promoted to float64 before squaring.
//
// Complexity: O(1).
func Distance(a, b cell.Cell) float64 {
	var (
		dx = float64(a.X - b.X)
		dy = float64(a.Y - b.Y)
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// TotalDistance sums Distance(seq[i-1], seq[i]) for i in [1, len(seq)).
// Sequences of length ≤ 1 have zero length.
//
// Complexity: O(n).
func TotalDistance(seq []cell.Cell) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(seq); i++ {
		sum += Distance(seq[i-1], seq[i])
	}

	return sum
}

// TotalTime returns ServiceTime×len(seq) + TravelSpeed×TotalDistance(seq).
//
// Complexity: O(n).
func (m Model) TotalTime(seq []cell.Cell) float64 {
	return m.ServiceTime*float64(len(seq)) + m.TravelSpeed*TotalDistance(seq)
}

// Stats is the statistics tuple reported for a tour.
type Stats struct {
	TotalReward   float64
	TotalDistance float64
	TotalTime     float64
	// UniqueCells counts distinct cells by full-field equality.
	UniqueCells int
}

// Measure computes the statistics tuple of tour under m.
//
// Complexity: O(n log n) because of the unique-cell count.
func (m Model) Measure(tour []cell.Cell) Stats {
	var dist = TotalDistance(tour)

	return Stats{
		TotalReward:   TotalReward(tour),
		TotalDistance: dist,
		TotalTime:     m.ServiceTime*float64(len(tour)) + m.TravelSpeed*dist,
		UniqueCells:   cell.UniqueCount(tour),
	}
}
