package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/tictactoe"
)

// newTictactoeCmd drives the position validator. Input per case: three
// board rows of 'X', 'O' and '.'; output: "yes" when the position can
// occur in a legal game, "no" otherwise.
func newTictactoeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tictactoe",
		Short: "Validate whether a tic-tac-toe position is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, tictactoeCase); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func tictactoeCase(sc *caseScanner, w io.Writer) error {
	rows := make([]string, 3)
	for i := range rows {
		var err error
		if rows[i], err = sc.Line(); err != nil {
			return err
		}
	}

	ok, err := tictactoe.Reachable(rows)
	if err != nil {
		return err
	}
	if ok {
		_, err = fmt.Fprintln(w, "yes")
	} else {
		_, err = fmt.Fprintln(w, "no")
	}
	return err
}
