// Package julka splits a pile of apples between two children when the
// total and the first child's surplus are known: Klaudia receives
// (total+surplus)/2 apples and Natalia the rest.
//
// Inputs arrive as decimal strings because the judge allows values up
// to 10^100 — far past any native integer — so the arithmetic runs on
// math/big. Validation rejects non-numeric input outright, and inputs
// with no whole-apple solution (surplus exceeding the total, or a
// total/surplus parity mismatch) are reported as unsolvable rather
// than silently rounded.
//
// Complexity: O(digits) — one addition, one subtraction, two halvings.
//
// Errors: ErrBadNumber for unparseable or negative input,
// ErrNoSolution when no non-negative integer split exists.
package julka
