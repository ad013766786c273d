package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/reach"
)

// newReachCmd drives the reachability problem. Input: one line
// "n m q", then m edge lines "u v", then q query lines "u v"; output:
// "yes" or "no" per query. Unlike the other drivers this problem has
// no leading test-case count.
func newReachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reach",
		Short: "Answer undirected reachability queries after one labeling pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())

			head, err := sc.fixedInts(3)
			if err != nil {
				return err
			}
			n, m, q := head[0], head[1], head[2]
			if m < 0 || q < 0 {
				return fmt.Errorf("%w: negative edge or query count", errInput)
			}

			edges := make([][2]int, m)
			for i := range edges {
				e, err := sc.fixedInts(2)
				if err != nil {
					return err
				}
				edges[i] = [2]int{e[0], e[1]}
			}

			comps, err := reach.Build(n, edges)
			if err != nil {
				return err
			}

			for i := 0; i < q; i++ {
				qq, err := sc.fixedInts(2)
				if err != nil {
					return err
				}
				ok, err := comps.Connected(qq[0], qq[1])
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintln(w, "yes")
				} else {
					fmt.Fprintln(w, "no")
				}
			}
			return w.Flush()
		},
	}
}
