package tictactoe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vknysh/classics/tictactoe"
)

// TestReachable_Errors verifies board-shape validation.
func TestReachable_Errors(t *testing.T) {
	_, err := tictactoe.Reachable([]string{"XXX", "OO."})
	require.ErrorIs(t, err, tictactoe.ErrBadBoard)

	_, err = tictactoe.Reachable([]string{"XXXX", "OO.", "..."})
	require.ErrorIs(t, err, tictactoe.ErrBadBoard)

	_, err = tictactoe.Reachable([]string{"XX?", "OO.", "..."})
	require.ErrorIs(t, err, tictactoe.ErrBadBoard)
}

// TestReachable_Positions covers the validator's rule table.
func TestReachable_Positions(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want bool
	}{
		{"empty board", []string{"...", "...", "..."}, true},
		{"single X", []string{"...", ".X.", "..."}, true},
		{"single O first", []string{"...", ".O.", "..."}, false},
		{"balanced midgame", []string{"XO.", ".X.", "..O"}, true},
		{"two extra X", []string{"XX.", ".X.", "..O"}, false},
		{"X row win, X=O+1", []string{"XXX", "OO.", "..."}, true},
		{"X row win, X=O", []string{"XXX", "OO.", "..O"}, false},
		{"O win, X=O", []string{"XX.", "OOO", ".X."}, true},
		{"O win, X=O+1", []string{"X.X", "OOO", "XX."}, false},
		{"both win", []string{"XXX", "OOO", "X.."}, false},
		{"play after X win", []string{"XXX", "OO.", "O.."}, false},
		{"X double line via corner", []string{"XXX", "XOO", "XOO"}, true},
		{"full draw", []string{"XOX", "XXO", "OXO"}, true},
	}
	for _, tc := range cases {
		got, err := tictactoe.Reachable(tc.rows)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got, tc.name)
	}
}
