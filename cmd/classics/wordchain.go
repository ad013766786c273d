package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/wordchain"
)

// newWordchainCmd drives the play-on-words problem. Input per case: a
// word count line, then one word per line; output: "possible" or
// "impossible".
func newWordchainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wordchain",
		Short: "Can all words form one chain, each starting with the previous word's last letter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, wordchainCase); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

func wordchainCase(sc *caseScanner, w io.Writer) error {
	n, err := sc.Int()
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative word count %d", errInput, n)
	}
	words := make([]string, n)
	for i := range words {
		if words[i], err = sc.Line(); err != nil {
			return err
		}
	}

	ok, err := wordchain.Chainable(words)
	if err != nil {
		return err
	}
	if ok {
		_, err = fmt.Fprintln(w, "possible")
	} else {
		_, err = fmt.Fprintln(w, "impossible")
	}
	return err
}
