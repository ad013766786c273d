// Package beads finds the starting offset of the lexicographically
// smallest rotation of a string, treating the string as circular
// ("glass beads" on a necklace cut at the best position).
//
// What
//
//   - MinRotation returns the zero-based offset k such that the rotation
//     starting at k is ≤ every other rotation of the input.
//   - Ties (several equal minimal rotations) always resolve to the
//     smallest offset: the candidate only moves on a strict win.
//   - Two interchangeable strategies, selected via WithAlgorithm:
//   - Booth — linear time, the production path. Scans the doubled
//     buffer once, maintaining a failure table so no character pair
//     is compared more than a constant number of times.
//   - Duel — improved-naive reference, quadratic on adversarial
//     repetitive inputs. Kept as an independent oracle: it is short
//     enough to verify by eye, so tests cross-check Booth against it.
//
// Why two algorithms
//
//	Booth's index arithmetic is genuinely easy to get wrong; the duel
//	method is trivially auditable. Agreement between the two on random
//	and exhaustive small inputs is the package's main safety net.
//
// Validation
//
//	Input is validated eagerly, before any scanning: length must lie in
//	[1, MaxLen] (default 10_000_000, tunable via WithMaxLen) and every
//	byte must satisfy the symbol class (default lowercase 'a'..'z',
//	relaxable via WithAlphabet — the algorithms themselves only need a
//	total order on bytes). All violations surface as ErrInvalidInput
//	wrapped with the concrete reason.
//
// Complexity (n = input length)
//
//   - Booth: O(n) time, O(n) extra memory (failure table; the doubled
//     buffer is simulated by modular indexing, never materialized).
//   - Duel:  O(n²) worst-case time, O(n) extra memory (it materializes
//     the doubled buffer).
//
// Usage
//
//	k, err := beads.MinRotation("baabaa")          // k == 1 ("aabaab")
//	k, err = beads.MinRotation(s, beads.WithAlgorithm(beads.Duel))
//
// The judge-facing contract is 1-based; callers printing judge output
// add 1 to the returned offset.
package beads
