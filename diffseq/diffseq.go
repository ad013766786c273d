package diffseq

import (
	"errors"
	"fmt"
)

// Sentinel errors for Extrapolate.
var (
	// ErrNoTerms is returned for an empty sequence.
	ErrNoTerms = errors.New("diffseq: no terms supplied")

	// ErrBadCount is returned for a negative extrapolation count.
	ErrBadCount = errors.New("diffseq: count must be non-negative")
)

// Extrapolate returns the next m terms of the polynomial sequence whose
// leading terms are given. The input slice is not modified.
func Extrapolate(terms []int64, m int) ([]int64, error) {
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, m)
	}
	if m == 0 {
		return []int64{}, nil
	}

	// Keep only the trailing edge of the difference table: edge[r] is
	// the last element of row r. That is all extension needs.
	edge := buildEdge(terms)

	out := make([]int64, m)
	for i := range out {
		// The deepest row is constant; fold one new element up through
		// every row.
		for r := len(edge) - 2; r >= 0; r-- {
			edge[r] += edge[r+1]
		}
		out[i] = edge[0]
	}
	return out, nil
}

// buildEdge computes the last element of every difference-table row,
// stopping early once a row goes all-zero (lower true degree).
func buildEdge(terms []int64) []int64 {
	row := append([]int64(nil), terms...)
	edge := []int64{row[len(row)-1]}
	for len(row) > 1 {
		next := make([]int64, len(row)-1)
		zero := true
		for i := range next {
			next[i] = row[i+1] - row[i]
			if next[i] != 0 {
				zero = false
			}
		}
		if zero {
			break
		}
		row = next
		edge = append(edge, row[len(row)-1])
	}
	return edge
}
