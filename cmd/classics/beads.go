package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vknysh/classics/beads"
)

// newBeadsCmd drives the minimal-rotation problem. Input per case: a
// declared-length line followed by the sequence line; output: the
// 1-based offset of the smallest rotation.
func newBeadsCmd() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "beads",
		Short: "Cut point of the lexicographically smallest necklace rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := parseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			sc := newCaseScanner(cmd.InOrStdin())
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := runCases(sc, w, func(sc *caseScanner, w io.Writer) error {
				return beadsCase(sc, w, alg)
			}); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&algorithm, "algorithm", "booth",
		"rotation strategy: booth or duel")
	return cmd
}

func parseAlgorithm(name string) (beads.Algorithm, error) {
	switch name {
	case "booth":
		return beads.Booth, nil
	case "duel":
		return beads.Duel, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (want booth or duel)", name)
}

func beadsCase(sc *caseScanner, w io.Writer, alg beads.Algorithm) error {
	declared, err := sc.Int()
	if err != nil {
		return err
	}
	seq, err := sc.Line()
	if err != nil {
		return err
	}
	// The declared-length line is a judge-format consistency check and
	// deliberately lives here, not in the core.
	if declared != len(seq) {
		return fmt.Errorf("%w: declared length %d, actual %d", errInput, declared, len(seq))
	}

	k, err := beads.MinRotation(seq,
		beads.WithAlgorithm(alg),
		beads.WithMaxLen(limits.Beads.MaxLen),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, k+1) // judge contract is 1-based
	return err
}
