// Command flowctl is a CLI front end for engine.ComputeFlow: run a single
// computation against a flat edge file or a persistent bbolt store, print
// the resulting transfers, and optionally render them as a DOT graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flowctl",
		Short: "Compute and inspect trust-network payment flows",
	}
	root.AddCommand(newFlowCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newServeCmd())
	return root
}
