package tictactoe

import (
	"errors"
	"fmt"
)

// ErrBadBoard is returned when the board shape or symbols are wrong.
var ErrBadBoard = errors.New("tictactoe: malformed board")

// lines enumerates the eight winning triples as cell indexes into the
// flattened board.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Reachable reports whether the position given as three rows of three
// cells ('X', 'O' or '.') can arise in a legal game.
func Reachable(rows []string) (bool, error) {
	cells, err := flatten(rows)
	if err != nil {
		return false, err
	}

	var xs, os int
	for _, c := range cells {
		switch c {
		case 'X':
			xs++
		case 'O':
			os++
		}
	}
	if xs != os && xs != os+1 {
		return false, nil
	}

	xWin := wins(cells, 'X')
	oWin := wins(cells, 'O')
	switch {
	case xWin && oWin:
		return false, nil
	case xWin:
		// X just moved
		return xs == os+1, nil
	case oWin:
		// O just moved
		return xs == os, nil
	}
	return true, nil
}

// flatten validates shape and symbols and returns the 9-cell board.
func flatten(rows []string) ([9]byte, error) {
	var cells [9]byte
	if len(rows) != 3 {
		return cells, fmt.Errorf("%w: %d rows", ErrBadBoard, len(rows))
	}
	for r, row := range rows {
		if len(row) != 3 {
			return cells, fmt.Errorf("%w: row %d has %d cells", ErrBadBoard, r, len(row))
		}
		for c := 0; c < 3; c++ {
			b := row[c]
			if b != 'X' && b != 'O' && b != '.' {
				return cells, fmt.Errorf("%w: cell (%d,%d) = %q", ErrBadBoard, r, c, b)
			}
			cells[3*r+c] = b
		}
	}
	return cells, nil
}

// wins reports whether player p holds a complete line.
func wins(cells [9]byte, p byte) bool {
	for _, l := range lines {
		if cells[l[0]] == p && cells[l[1]] == p && cells[l[2]] == p {
			return true
		}
	}
	return false
}
