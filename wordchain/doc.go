// Package wordchain decides whether a multiset of lowercase words can
// be arranged into a single chain where each word starts with the last
// letter of its predecessor ("play on words").
//
// Each word is modeled as one directed edge first-letter→last-letter on
// a 26-vertex graph; the question is exactly whether that multigraph
// has an Eulerian path. Two conditions are checked:
//
//   - Degree balance: every letter has out-degree equal to in-degree,
//     except for at most one letter with out−in = 1 (the chain's start)
//     and at most one with in−out = 1 (its end).
//   - Connectivity: all letters that occur in any word lie in a single
//     weakly connected component.
//
// Complexity: O(total word length + 26) time, O(26) extra memory.
//
// Errors: ErrNoWords for an empty list, ErrBadWord for an empty word or
// a symbol outside 'a'..'z'.
package wordchain
