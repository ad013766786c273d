// Package stalls places aggressive cows: given stall positions along a
// line and a cow count, it finds the largest possible minimum distance
// between any two cows ("binary search on the answer").
//
// How
//
//	Positions are sorted once; the answer is then found by binary
//	search over candidate distances d, where feasibility of a given d
//	is a greedy left-to-right sweep (always place the next cow in the
//	first stall at least d away). The predicate is monotone — if d is
//	feasible, every smaller d is — which is what makes the bisection
//	valid.
//
// Complexity: O(n log n) for the sort, O(n log(range)) for the search.
//
// Errors: ErrTooFewStalls when fewer than two stalls or cows are
// given, ErrTooManyCows when cows exceed stalls, ErrBadPosition for a
// negative stall coordinate.
package stalls
