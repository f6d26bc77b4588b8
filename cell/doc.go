// Package cell defines the Cell value type shared by every cellroute package,
// together with the total order, equality and sequence helpers the routing
// algorithms rely on.
//
// What:
//
//   - Cell is a point of interest: integer coordinates (X, Y) and a scalar Reward.
//   - Compare defines a total order over the triple (X, Y, Reward); Equal is the
//     matching equality relation. Both are explicit, never memberwise defaults.
//   - NextPermutation walks the lexicographic permutation cycle of a sequence
//     under that order, wrapping from the greatest ordering back to the smallest.
//   - Tour helpers (Clone, Close, IsClosed, Unique, Key) keep every mutation on an
//     owned copy and make sequence equality usable as a map key.
//
// Complexity:
//
//   - Compare / Equal: O(1).
//   - NextPermutation: O(n) time, O(1) space.
//   - Sort / Unique:   O(n log n) time.
//   - Key:             O(n) time and space.
//
// Determinism:
//
//   - Rewards are compared with cmp.Compare, so NaN sorts before every other
//     value and the order stays total even for malformed input.
package cell
