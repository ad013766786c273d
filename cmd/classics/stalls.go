package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/stalls"
)

// newStallsCmd drives the aggressive-cows problem. Input per case: a
// line "n c", then n stall-position lines; output: the largest
// achievable minimum distance.
func newStallsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stalls",
		Short: "Maximize the minimum distance between cows placed in stalls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, stallsCase); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func stallsCase(sc *caseScanner, w io.Writer) error {
	head, err := sc.fixedInts(2)
	if err != nil {
		return err
	}
	n, cows := head[0], head[1]
	if n < 0 {
		return fmt.Errorf("%w: negative stall count %d", errInput, n)
	}
	positions := make([]int, n)
	for i := range positions {
		if positions[i], err = sc.Int(); err != nil {
			return err
		}
	}

	d, err := stalls.MaxMinDistance(positions, cows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, d)
	return err
}
