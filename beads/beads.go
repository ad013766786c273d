package beads

import "fmt"

// MinRotation returns the zero-based offset k ∈ [0, len(s)) of the
// lexicographically smallest rotation of s, applying any number of
// functional Options. When several rotations tie for smallest, the
// smallest offset is returned.
//
// Returns ErrOptionViolation for bad options and ErrInvalidInput for an
// empty, over-long, or out-of-alphabet sequence; both are detected
// before any scanning starts. Valid input cannot fail.
func MinRotation(s string, opts ...Option) (int, error) {
	// Build options and catch any invalid ones immediately
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	if err := validate(s, &o); err != nil {
		return 0, err
	}

	if o.algorithm == Duel {
		return duelSearch(s), nil
	}
	return boothSearch(s), nil
}

// validate rejects the sequence before any computation: length bounds
// first, then a single pass over the symbol class.
func validate(s string, o *options) error {
	n := len(s)
	if n == 0 {
		return fmt.Errorf("%w: sequence is empty", ErrInvalidInput)
	}
	if n > o.maxLen {
		return fmt.Errorf("%w: length %d exceeds maximum %d", ErrInvalidInput, n, o.maxLen)
	}
	for i := 0; i < n; i++ {
		if !o.alphabet(s[i]) {
			return fmt.Errorf("%w: disallowed symbol %q at position %d", ErrInvalidInput, s[i], i)
		}
	}
	return nil
}

// boothSearch implements Booth's minimal-rotation algorithm in O(n).
//
// The doubled buffer s+s is simulated by indexing s[p%n]; comparison
// semantics are identical to a materialized copy. f is the failure
// table over the doubled buffer: f[p] is the length-minus-one of the
// longest border of the current candidate's prefix ending at offset p
// inside the candidate window, or -1 when no border exists. k is the
// current best candidate offset; it only moves on a strict win, which
// is what makes ties resolve to the smallest offset.
//
// The scan runs over the whole doubled buffer: a candidate can still
// be displaced right up to j = 2n-1 (e.g. "aba", where k jumps to 2 at
// j = 3), so there is no sound earlier stopping point short of a
// confirmed full-length match run.
func boothSearch(s string) int {
	n := len(s)
	if n == 1 {
		return 0
	}

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}

	k := 0
	for j := 1; j < 2*n; j++ {
		sj := s[j%n]
		// Border length recorded for the analogous offset within the
		// current candidate window.
		i := f[j-k-1]
		for i != -1 && sj != s[(k+i+1)%n] {
			if sj < s[(k+i+1)%n] {
				// Candidate k is beaten; the mismatch implies the new
				// best start.
				k = j - i - 1
			}
			i = f[i]
		}
		if i == -1 && sj != s[k%n] {
			if sj < s[k%n] {
				k = j
			}
			f[j-k] = -1
		} else {
			// Either the while-loop exited on a match (extend border
			// i by one) or i == -1 and sj equals the window head
			// (border length 0). Both are i+1.
			f[j-k] = i + 1
		}
	}

	return k % n
}
