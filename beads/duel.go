package beads

// duelSearch is the improved-naive reference strategy: the reigning
// candidate is compared against each later offset character by
// character on the doubled buffer until the first mismatch decides the
// duel. When the challenger loses after matching m characters, offsets
// challenger..challenger+m are all strictly beaten by earlier offsets
// and are skipped wholesale.
//
// Worst case O(n²) on highly repetitive input; trivial to verify, which
// is exactly why it survives as the cross-check oracle for boothSearch.
func duelSearch(s string) int {
	n := len(s)
	if n == 1 {
		return 0
	}
	d := s + s

	best := 0
	for j := 1; j < n; {
		m := 0
		for m < n && d[best+m] == d[j+m] {
			m++
		}
		if m == n {
			// Exact tie over the full length: the smaller offset wins.
			j++
			continue
		}
		if d[j+m] < d[best+m] {
			best = j
			j++
			continue
		}
		// Challenger and everything through j+m is dominated.
		j += m + 1
	}

	return best
}
