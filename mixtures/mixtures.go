package mixtures

import (
	"errors"
	"fmt"
)

// Sentinel errors for MinSmoke.
var (
	// ErrNoMixtures is returned for an empty shelf.
	ErrNoMixtures = errors.New("mixtures: no mixtures supplied")

	// ErrBadColor is returned for a color outside 0..99.
	ErrBadColor = errors.New("mixtures: color out of range")
)

// MinSmoke returns the minimum total smoke released while mixing the
// whole shelf down to a single mixture.
func MinSmoke(colors []int) (int, error) {
	n := len(colors)
	if n == 0 {
		return 0, ErrNoMixtures
	}
	for i, c := range colors {
		if c < 0 || c > 99 {
			return 0, fmt.Errorf("%w: color %d = %d", ErrBadColor, i, c)
		}
	}
	if n == 1 {
		return 0, nil
	}

	// prefix[i] = sum of colors[0:i]; segment color i..j is then
	// (prefix[j+1]-prefix[i]) mod 100.
	prefix := make([]int, n+1)
	for i, c := range colors {
		prefix[i+1] = prefix[i] + c
	}
	colorOf := func(i, j int) int { return (prefix[j+1] - prefix[i]) % 100 }

	smoke := make([][]int, n)
	for i := range smoke {
		smoke[i] = make([]int, n)
	}

	// widen the interval; length-1 intervals cost nothing
	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			best := -1
			for cut := i; cut < j; cut++ {
				cost := smoke[i][cut] + smoke[cut+1][j] + colorOf(i, cut)*colorOf(cut+1, j)
				if best == -1 || cost < best {
					best = cost
				}
			}
			smoke[i][j] = best
		}
	}

	return smoke[0][n-1], nil
}
