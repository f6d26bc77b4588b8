package cell

// NextPermutation rearranges seq in place into its lexicographic successor
// under Compare and reports true. When seq already holds the greatest ordering,
// it is rewritten into the smallest ordering (ascending) and false is returned,
// so repeated calls walk a finite cycle that restarts from the beginning.
//
// Equal cells are handled as a multiset: each distinct ordering is produced once.
//
// Algorithm:
//  1. Find the largest i with seq[i] < seq[i+1]. If none exists, reverse seq and
//     report wrap-around.
//  2. Find the largest j > i with seq[i] < seq[j] and swap seq[i], seq[j].
//  3. Reverse the suffix seq[i+1:].
//
// Complexity: O(n) time, O(1) space.
func NextPermutation(seq []Cell) bool {
	var n = len(seq)
	if n < 2 {
		return false
	}

	var i = n - 2
	for i >= 0 && Compare(seq[i], seq[i+1]) >= 0 {
		i--
	}
	if i < 0 {
		reverse(seq, 0, n-1)
		return false
	}

	var j = n - 1
	for Compare(seq[i], seq[j]) >= 0 {
		j--
	}
	seq[i], seq[j] = seq[j], seq[i]
	reverse(seq, i+1, n-1)

	return true
}

// reverse reverses the inclusive range seq[lo..hi] in place.
func reverse(seq []Cell, lo, hi int) {
	for lo < hi {
		seq[lo], seq[hi] = seq[hi], seq[lo]
		lo++
		hi--
	}
}
