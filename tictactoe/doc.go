// Package tictactoe validates tic-tac-toe positions: given a 3×3 board
// of 'X', 'O', and '.' cells, Reachable reports whether the position
// can occur in a legal game where X moves first and play stops the
// moment someone completes a line.
//
// A position is reachable exactly when:
//
//   - X count equals O count, or exceeds it by one (X moves first).
//   - If X has a completed line, X made the last move: X = O + 1.
//   - If O has a completed line, O made the last move: X = O.
//   - X and O do not both have completed lines.
//
// Two lines for the same player are fine when they share the final
// cell (e.g. a corner completing a row and a column at once); any
// other double win is already excluded by the count conditions.
//
// Errors: ErrBadBoard when the board is not exactly three rows of
// three cells drawn from {'X', 'O', '.'}.
package tictactoe
