// Package cell: sequence and tour helpers.
//
// A tour is an ordered []Cell. A closed tour starts and ends with the same
// origin cell (field equality). None of the helpers below retain or mutate
// their input unless the name says so (Sort, NextPermutation).
package cell

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Clone returns an independent copy of seq. A nil input yields nil.
//
// Complexity: O(n) time, O(n) space.
func Clone(seq []Cell) []Cell {
	if seq == nil {
		return nil
	}
	out := make([]Cell, len(seq))
	copy(out, seq)

	return out
}

// Close returns a fresh slice seq + [seq[0]]. An empty seq yields an empty,
// non-nil slice: there is no origin to return to.
//
// Complexity: O(n) time, O(n) space.
func Close(seq []Cell) []Cell {
	if len(seq) == 0 {
		return []Cell{}
	}
	out := make([]Cell, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = seq[0]

	return out
}

// IsClosed reports whether tour is non-empty and both starts and ends at origin.
//
// Complexity: O(1).
func IsClosed(tour []Cell, origin Cell) bool {
	if len(tour) == 0 {
		return false
	}

	return Equal(tour[0], origin) && Equal(tour[len(tour)-1], origin)
}

// Sort orders seq in place, ascending under Compare.
//
// Complexity: O(n log n).
func Sort(seq []Cell) {
	slices.SortFunc(seq, Compare)
}

// EqualSeq reports whether a and b hold equal cells in the same order.
//
// Complexity: O(n).
func EqualSeq(a, b []Cell) bool {
	return slices.EqualFunc(a, b, Equal)
}

// Unique returns the distinct cells of seq in ascending order.
// The input is left untouched.
//
// Complexity: O(n log n) time, O(n) space.
func Unique(seq []Cell) []Cell {
	out := Clone(seq)
	if len(out) == 0 {
		return out
	}
	Sort(out)

	return slices.CompactFunc(out, Equal)
}

// UniqueCount returns the number of distinct cells in seq.
//
// Complexity: O(n log n) time, O(n) space.
func UniqueCount(seq []Cell) int {
	return len(Unique(seq))
}

// Key encodes seq into a string such that Key(a) == Key(b) exactly when
// EqualSeq(a, b). Rewards are encoded by their IEEE-754 bits with -0 folded
// into +0 and every NaN folded into one canonical NaN, matching Compare.
//
// Complexity: O(n) time and space.
func Key(seq []Cell) string {
	var (
		sb  strings.Builder
		buf = make([]byte, 0, 64)
		c   Cell
	)
	for _, c = range seq {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(c.X), 36)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(c.Y), 36)
		buf = append(buf, ',')
		buf = strconv.AppendUint(buf, rewardBits(c.Reward), 36)
		buf = append(buf, ';')
		sb.Write(buf)
	}

	return sb.String()
}

// rewardBits returns the canonical bit pattern used by Key.
func rewardBits(r float64) uint64 {
	switch {
	case math.IsNaN(r):
		return math.Float64bits(math.NaN())
	case r == 0:
		return 0
	default:
		return math.Float64bits(r)
	}
}

// DebugString returns a compact printable form for tests and logs,
// e.g. "[(0,0:0) (1,0:5) | (0,0:0)]" where the bar marks the closing cell.
//
// Complexity: O(n) time and space.
func DebugString(tour []Cell) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		n  = len(tour) - 1
		i  int
	)
	sb.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tour[i].String())
	}
	if n > 0 {
		sb.WriteString(" | ")
	}
	sb.WriteString(tour[n].String())
	sb.WriteByte(']')

	return sb.String()
}
