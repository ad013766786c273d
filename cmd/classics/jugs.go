package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/jugs"
)

// newJugsCmd drives the two-jug puzzle. Input per case: one line
// "a b c"; output: the minimum operation count, or -1 when c is
// unreachable.
func newJugsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jugs",
		Short: "Fewest fill/empty/pour steps to measure a target volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, jugsCase); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func jugsCase(sc *caseScanner, w io.Writer) error {
	vs, err := sc.fixedInts(3)
	if err != nil {
		return err
	}
	ops, err := jugs.MinOps(vs[0], vs[1], vs[2])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, ops)
	return err
}
