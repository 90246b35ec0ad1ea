// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cinematch/internal/catalog"
	"github.com/pdiddy/cinematch/internal/dataset"
	"github.com/pdiddy/cinematch/internal/report"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movies available for ranking",
	Long: `Movies lists the cleaned records in dataset order, optionally filtered
by a case-insensitive title substring. Use it to find the exact title to
pass to rank. --status prints catalog import details instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if status, _ := cmd.Flags().GetBool("status"); status {
			return printCatalogStatus(cmd)
		}

		fromCatalog, _ := cmd.Flags().GetBool("from-catalog")
		match, _ := cmd.Flags().GetString("match")

		movies, err := loadMovies(cmd.Context(), fromCatalog)
		if err != nil {
			return err
		}
		report.FormatMovies(cmd.OutOrStdout(), dataset.Match(movies, match))
		return nil
	},
}

func printCatalogStatus(cmd *cobra.Command) error {
	store, err := catalog.NewStore(appCfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	info, ok, err := store.LastImport(cmd.Context())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Catalog: %s\n", store.Path())
	if !ok {
		fmt.Fprintln(w, "Never imported.")
		return nil
	}
	fmt.Fprintf(w, "Source:   %s\n", info.Source)
	fmt.Fprintf(w, "Movies:   %d\n", info.Count)
	fmt.Fprintf(w, "Imported: %s\n", info.ImportedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func init() {
	moviesCmd.Flags().Bool("from-catalog", false, "read movies from the catalog instead of --csv")
	moviesCmd.Flags().String("match", "", "only list titles containing this text (ignoring case)")
	moviesCmd.Flags().Bool("status", false, "show catalog import details")

	rootCmd.AddCommand(moviesCmd)
}
