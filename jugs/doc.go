// Package jugs solves the two-jug measuring puzzle by breadth-first
// search over the space of fill states.
//
// What
//
//	MinOps(a, b, c) returns the minimum number of operations needed to
//	end up with exactly c litres in either jug, starting from two empty
//	jugs of capacities a and b. The six operations are: fill a jug,
//	empty a jug, pour one jug into the other until the source is empty
//	or the destination is full. When c is unreachable the result is -1
//	(the judge's "impossible" answer), not an error.
//
// How
//
//	A plain BFS over states (x, y) — litres currently in each jug —
//	with a visited set keyed on the packed pair. Every reachable state
//	has x or y pinned to 0 or a capacity, so the frontier stays small
//	even for large capacities. A gcd divisibility pre-check rejects
//	unreachable targets without searching.
//
// Complexity: O(a + b) states visited, O(a + b) memory.
//
// Errors: ErrBadCapacity for a ≤ 0 or b ≤ 0, ErrBadTarget for c < 0.
package jugs
