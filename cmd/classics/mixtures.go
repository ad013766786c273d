package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/mixtures"
)

// newMixturesCmd drives the mixing problem. Input per case: a mixture
// count line, then one line of that many colors; output: the minimum
// total smoke.
func newMixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mixtures",
		Short: "Minimum smoke from mixing adjacent mixtures down to one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, mixturesCase); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func mixturesCase(sc *caseScanner, w io.Writer) error {
	n, err := sc.Int()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative mixture count %d", errInput, n)
	}
	colors, err := sc.fixedInts(n)
	if err != nil {
		return err
	}

	smoke, err := mixtures.MinSmoke(colors)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, smoke)
	return err
}
