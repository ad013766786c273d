// Command classics is the batch driver for the ten judge problems:
// each subcommand reads one problem's line-oriented input from stdin
// and writes one answer per case to stdout. Diagnostics go to stderr
// so the answer stream stays judge-comparable.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
