package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	strict     bool
	verbose    bool
	limitsPath string
	limits     Limits
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "classics",
		Short:         "Batch drivers for ten classic judge problems",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			var err error
			limits, err = loadLimits(limitsPath)
			return err
		},
	}

	root.PersistentFlags().BoolVar(&strict, "strict", true,
		"abort the whole batch on the first invalid case")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose logging")
	root.PersistentFlags().StringVar(&limitsPath, "limits", "",
		"YAML file overriding per-problem input limits")

	root.AddCommand(
		newBeadsCmd(),
		newWordchainCmd(),
		newReachCmd(),
		newJugsCmd(),
		newJulkaCmd(),
		newStallsCmd(),
		newMixturesCmd(),
		newCoinwaysCmd(),
		newDiffseqCmd(),
		newTictactoeCmd(),
	)
	return root
}

// runCases reads the leading test-case count and applies fn once per
// case. Every case handler reads its full payload before validating,
// so in non-strict mode the input stream stays aligned after a failed
// case: the failure is logged and the batch continues without an
// answer line for that case.
func runCases(sc *caseScanner, out io.Writer, fn func(*caseScanner, io.Writer) error) error {
	t, err := sc.Int()
	if err != nil {
		return fmt.Errorf("test-case count: %w", err)
	}
	for i := 1; i <= t; i++ {
		if err := fn(sc, out); err != nil {
			if strict {
				return fmt.Errorf("case %d: %w", i, err)
			}
			log.WithError(err).Warnf("case %d skipped", i)
		}
	}
	return nil
}
