// Package mixtures computes the minimum total smoke produced when
// repeatedly mixing adjacent mixtures on a shelf.
//
// Mixing two mixtures of colors a and b (each 0..99) yields one
// mixture of color (a+b) mod 100 and releases a·b units of smoke; only
// adjacent mixtures may be combined. The order of mixing changes the
// total, so the answer is an interval dynamic program: smoke[i][j] is
// the cheapest way to reduce the shelf segment i..j to one mixture,
// split over every intermediate cut point, with segment colors read
// from a prefix-sum table in O(1).
//
// Complexity: O(n³) time, O(n²) memory — n is at most a few hundred in
// the source judge, so both are comfortable.
//
// Errors: ErrNoMixtures for an empty shelf, ErrBadColor for a color
// outside 0..99.
package mixtures
