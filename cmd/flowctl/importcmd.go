package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trustnet/flowengine/edgedb"
)

func newImportCmd() *cobra.Command {
	var edgesPath, dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a flat edge file into a bbolt-backed store",
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := loadEdgesFile(edgesPath)
			if err != nil {
				return err
			}

			store, err := edgedb.OpenBoltStore(dbPath)
			if err != nil {
				return fmt.Errorf("opening %s: %w", dbPath, err)
			}
			defer store.Close()

			if err := store.Import(edges); err != nil {
				return fmt.Errorf("importing into %s: %w", dbPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d edges into %s\n", len(edges), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&edgesPath, "edges", "", "flat JSON edge file (required)")
	cmd.Flags().StringVar(&dbPath, "db", "", "bbolt database file to write (required)")
	_ = cmd.MarkFlagRequired("edges")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
