package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/julka"
)

// newJulkaCmd drives the apple-splitting problem. Input per case: two
// lines, the total and Klaudia's surplus; output: two lines, Klaudia's
// then Natalia's share.
func newJulkaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "julka",
		Short: "Split apples given the total and one child's surplus (big integers)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, julkaCase); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func julkaCase(sc *caseScanner, w io.Writer) error {
	total, err := sc.Line()
	if err != nil {
		return err
	}
	surplus, err := sc.Line()
	if err != nil {
		return err
	}

	klaudia, natalia, err := julka.Share(total, surplus)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, klaudia.String()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, natalia.String())
	return err
}
