package stalls

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for MaxMinDistance.
var (
	// ErrTooFewStalls is returned when fewer than two stalls or fewer
	// than two cows are supplied.
	ErrTooFewStalls = errors.New("stalls: need at least two stalls and two cows")

	// ErrTooManyCows is returned when cows outnumber stalls.
	ErrTooManyCows = errors.New("stalls: more cows than stalls")

	// ErrBadPosition is returned for a negative stall coordinate.
	ErrBadPosition = errors.New("stalls: negative stall position")
)

// MaxMinDistance returns the largest d such that cows can occupy
// distinct stalls with every pairwise distance ≥ d. The input slice is
// not modified.
func MaxMinDistance(positions []int, cows int) (int, error) {
	if len(positions) < 2 || cows < 2 {
		return 0, fmt.Errorf("%w: %d stalls, %d cows", ErrTooFewStalls, len(positions), cows)
	}
	if cows > len(positions) {
		return 0, fmt.Errorf("%w: %d cows, %d stalls", ErrTooManyCows, cows, len(positions))
	}
	for i, p := range positions {
		if p < 0 {
			return 0, fmt.Errorf("%w: position %d = %d", ErrBadPosition, i, p)
		}
	}

	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)

	// Invariant: lo is always feasible, hi+1 never is.
	lo, hi := 0, sorted[len(sorted)-1]-sorted[0]
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if fits(sorted, cows, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo, nil
}

// fits greedily places cows left to right, each in the first stall at
// least d past the previous cow.
func fits(sorted []int, cows, d int) bool {
	placed := 1
	last := sorted[0]
	for _, p := range sorted[1:] {
		if p-last >= d {
			placed++
			if placed == cows {
				return true
			}
			last = p
		}
	}
	return false
}
