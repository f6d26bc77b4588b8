package cell

import (
	"cmp"
	"fmt"
	"strconv"
)

// Cell is a point of interest with integer grid coordinates and a reward.
// Cells are plain values: copying a Cell copies all of it.
type Cell struct {
	X, Y   int     // Coordinates on the integer grid
	Reward float64 // Reward collected on every visit
}

// New returns a Cell at (x, y) carrying reward.
func New(x, y int, reward float64) Cell {
	return Cell{X: x, Y: y, Reward: reward}
}

// Compare orders cells by X, then Y, then Reward.
// It returns -1 if a < b, +1 if a > b and 0 if a and b are equal.
//
// Complexity: O(1).
func Compare(a, b Cell) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}

	return cmp.Compare(a.Reward, b.Reward)
}

// Less reports whether a sorts strictly before b.
func Less(a, b Cell) bool {
	return Compare(a, b) < 0
}

// Equal reports whether a and b agree on all three fields.
// It is the equality relation induced by Compare.
func Equal(a, b Cell) bool {
	return Compare(a, b) == 0
}

// String renders the cell as "(x,y:reward)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d:%s)", c.X, c.Y, strconv.FormatFloat(c.Reward, 'g', -1, 64))
}
