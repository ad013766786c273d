package jugs

import (
	"errors"
	"fmt"
)

// Sentinel errors for MinOps.
var (
	// ErrBadCapacity is returned when either capacity is not positive.
	ErrBadCapacity = errors.New("jugs: capacities must be positive")

	// ErrBadTarget is returned when the target volume is negative.
	ErrBadTarget = errors.New("jugs: target must be non-negative")
)

// Impossible is the MinOps result for an unreachable target.
const Impossible = -1

// state is one BFS node: litres currently held in each jug.
type state struct {
	x, y int
}

// MinOps returns the minimum operation count to measure exactly c
// litres in either jug, or Impossible when no sequence of operations
// reaches c.
func MinOps(a, b, c int) (int, error) {
	if a <= 0 || b <= 0 {
		return 0, fmt.Errorf("%w: a = %d, b = %d", ErrBadCapacity, a, b)
	}
	if c < 0 {
		return 0, fmt.Errorf("%w: c = %d", ErrBadTarget, c)
	}

	if c == 0 {
		return 0, nil
	}
	// Any reachable volume is a multiple of gcd(a,b) no larger than the
	// bigger jug; reject without searching.
	if c > max(a, b) || c%gcd(a, b) != 0 {
		return Impossible, nil
	}

	start := state{0, 0}
	visited := map[state]bool{start: true}
	queue := []state{start}

	for depth := 1; len(queue) > 0; depth++ {
		var next []state
		for _, s := range queue {
			for _, t := range moves(s, a, b) {
				if visited[t] {
					continue
				}
				if t.x == c || t.y == c {
					return depth, nil
				}
				visited[t] = true
				next = append(next, t)
			}
		}
		queue = next
	}

	// Unreachable despite the divisibility check cannot happen for
	// valid inputs; kept for totality.
	return Impossible, nil
}

// moves enumerates the six successor states of s.
func moves(s state, a, b int) [6]state {
	pourAB := min(s.x, b-s.y)
	pourBA := min(s.y, a-s.x)
	return [6]state{
		{a, s.y}, // fill first
		{s.x, b}, // fill second
		{0, s.y}, // empty first
		{s.x, 0}, // empty second
		{s.x - pourAB, s.y + pourAB}, // pour first → second
		{s.x + pourBA, s.y - pourBA}, // pour second → first
	}
}

// gcd returns the greatest common divisor of two positive ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
