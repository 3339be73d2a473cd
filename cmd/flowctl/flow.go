package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trustnet/flowengine/dotviz"
	"github.com/trustnet/flowengine/engine"
	"github.com/trustnet/flowengine/types"
)

func newFlowCmd() *cobra.Command {
	var (
		edgesPath    string
		dbPath       string
		fromStr      string
		toStr        string
		amountStr    string
		maxHops      uint64
		maxTransfers uint64
		dotPath      string
	)

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Compute the maximum flow between two participants",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := types.ParseAddress(fromStr)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			sink, err := types.ParseAddress(toStr)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			requestedFlow := types.AmountMax()
			if amountStr != "" {
				requestedFlow, err = types.AmountFromDecimal(amountStr)
				if err != nil {
					return fmt.Errorf("--amount: %w", err)
				}
			}

			store, cleanup, err := openEdgeDB(edgesPath, dbPath)
			if err != nil {
				return err
			}
			defer cleanup()

			var maxDistancePtr, maxTransfersPtr *uint64
			if maxHops > 0 {
				maxDistancePtr = &maxHops
			}
			if maxTransfers > 0 {
				maxTransfersPtr = &maxTransfers
			}

			flow, transfers, err := engine.ComputeFlow(source, sink, store, requestedFlow, maxDistancePtr, maxTransfersPtr)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "flow: %s\n", flow)
			for _, t := range transfers {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s -> %s : %s (token %s)\n",
					t.From.Short(), t.To.Short(), t.Capacity, t.Token.Short())
			}

			if dotPath != "" {
				if err := os.WriteFile(dotPath, []byte(dotviz.Transfers(transfers)), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", dotPath, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&edgesPath, "edges", "", "flat JSON edge file")
	cmd.Flags().StringVar(&dbPath, "db", "", "bbolt-backed edge store")
	cmd.Flags().StringVar(&fromStr, "from", "", "source participant address (required)")
	cmd.Flags().StringVar(&toStr, "to", "", "sink participant address (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "requested flow amount, decimal (default: unbounded)")
	cmd.Flags().Uint64Var(&maxHops, "max-hops", 0, "maximum participant-to-participant hop count (0 = unlimited)")
	cmd.Flags().Uint64Var(&maxTransfers, "max-transfers", 0, "maximum transfer count in the result (0 = unlimited)")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the resulting transfers as a DOT graph to this path")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
