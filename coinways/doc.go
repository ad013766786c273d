// Package coinways counts the number of distinct ways to pay an exact
// amount from an unlimited supply of given coin denominations, where
// two payments differing only in coin order are the same way.
//
// The classic unbounded counting DP: process one denomination at a
// time and accumulate ways[s] += ways[s-coin], which makes the count
// order-insensitive by construction. Counts grow combinatorially — a
// few hundred units of amount already overflow int64 — so the table
// cells are big.Int.
//
// Complexity: O(len(coins)·amount) big-integer additions,
// O(amount) memory.
//
// Errors: ErrNoCoins for an empty denomination set, ErrBadCoin for a
// non-positive or repeated denomination, ErrBadAmount for a negative
// amount.
package coinways
