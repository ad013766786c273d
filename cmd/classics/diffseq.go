package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/diffseq"
)

// newDiffseqCmd drives the sequence-extension problem. Input per case:
// a line "k m", then one line with the k known terms; output: one line
// with the next m terms, space-separated.
func newDiffseqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diffseq",
		Short: "Extend a polynomial sequence by finite differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, diffseqCase); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func diffseqCase(sc *caseScanner, w io.Writer) error {
	head, err := sc.fixedInts(2)
	if err != nil {
		return err
	}
	k, m := head[0], head[1]

	terms, err := sc.Int64s()
	if err != nil {
		return err
	}
	if len(terms) != k {
		return fmt.Errorf("%w: expected %d terms, got %d", errInput, k, len(terms))
	}

	next, err := diffseq.Extrapolate(terms, m)
	if err != nil {
		return err
	}
	parts := make([]string, len(next))
	for i, v := range next {
		parts[i] = strconv.FormatInt(v, 10)
	}
	_, err = fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
