package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/coinways"
)

// newCoinwaysCmd drives the coin-counting problem. Input per case: one
// amount line; output: the number of ways to pay it from the
// configured denomination set.
func newCoinwaysCmd() *cobra.Command {
	var coins []int

	cmd := &cobra.Command{
		Use:   "coinways",
		Short: "Count the ways to pay an amount from a coin set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, func(sc *caseScanner, w io.Writer) error {
				return coinwaysCase(sc, w, coins)
			}); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntSliceVar(&coins, "coins", []int{1, 2, 5, 10, 20, 50, 100, 200},
		"denomination set")
	return cmd
}

func coinwaysCase(sc *caseScanner, w io.Writer, coins []int) error {
	amount, err := sc.Int()
	if err != nil {
		return err
	}
	ways, err := coinways.Count(amount, coins)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, ways.String())
	return err
}
