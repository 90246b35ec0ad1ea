// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cinematch/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Clean a movie CSV and store it in the catalog",
	Long: `Import reads the dataset given by --csv, drops rows whose year, runtime,
or rating do not parse, and replaces the SQLite catalog with the cleaned
records in file order. Later runs can use "rank --from-catalog" to skip
CSV parsing. Similarity scores are never stored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		ds, err := loadCSV()
		if err != nil {
			return err
		}

		store, err := catalog.NewStore(appCfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Import(cmd.Context(), appCfg.Dataset.CSV, ds.Movies)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d movies into %s", n, store.Path())
		if ds.Dropped > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " (%d rows dropped)", ds.Dropped)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
