// Package classics is a catalog of ten classic judge problems, each
// solved by one small, self-contained package — pure functions over
// bounded numeric/string inputs, with eager validation and no shared
// state between problems.
//
// 🚀 What is in the catalog?
//
//	beads/     — minimal rotation of a circular string (Booth + duel oracle)
//	wordchain/ — Eulerian-path feasibility over word dominoes
//	reach/     — undirected reachability via one BFS labeling pass
//	jugs/      — BFS over two-jug fill states
//	julka/     — big-integer apple splitting (math/big)
//	stalls/    — binary search on the answer (aggressive cows)
//	mixtures/  — interval DP for minimum mixing smoke
//	coinways/  — counting DP with big.Int way counts
//	diffseq/   — finite-difference sequence extension
//	tictactoe/ — legal-position validator
//
// ✨ Guarantees
//
//   - Deterministic: one input in, one answer out, no side effects
//   - Eager validation: malformed input is rejected with a sentinel
//     error before any computation starts
//   - Safe to call concurrently: all state is per-call-local
//
// The cmd/classics binary wraps every package in the judges'
// line-oriented batch protocol: a test-case count, then one case per
// iteration from stdin, one answer line per case to stdout.
//
//	go get github.com/vknysh/classics
package classics
