// Package cost is the shared cost model of cellroute: pure functions that
// compute the reward, length and time of an ordered sequence of cells.
//
// Model:
//
//	time(seq) = ServiceTime × len(seq) + TravelSpeed × distance(seq)
//
// where distance is the Euclidean length of the polyline seq[0]→…→seq[n-1].
// ServiceTime is charged per visited position (duplicates count, including the
// closing return to the origin) and TravelSpeed is the time per unit distance.
// Both are carried in a Model value, so the same algorithms run under different
// cost assumptions without global state.
//
// Reward is counted per occurrence: a cell listed twice contributes twice.
//
// All functions are defined for sequences of any length; an empty sequence has
// zero reward, distance and time. Nothing here allocates except Measure (which
// deduplicates to count unique cells).
package cost
