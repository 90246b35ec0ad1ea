// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cinematch/internal/dataset"
	"github.com/pdiddy/cinematch/internal/report"
	"github.com/pdiddy/cinematch/internal/similarity"
)

var rankCmd = &cobra.Command{
	Use:   "rank <title>",
	Short: "Rank every movie by similarity to a reference title",
	Long: `Rank looks up the reference title (exact match, ignoring case; the first
match wins when titles repeat), scores every movie in the dataset against it,
and prints the full ranking in descending order of total similarity. The
reference itself is included and scores 1.0. Equal totals keep dataset order.

--limit only shortens the printed output; the whole dataset is always ranked.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	fromCatalog, _ := cmd.Flags().GetBool("from-catalog")
	outPath, _ := cmd.Flags().GetString("output")
	title := strings.Join(args, " ")

	movies, err := loadMovies(cmd.Context(), fromCatalog)
	if err != nil {
		return err
	}

	idx, err := dataset.Lookup(movies, title)
	if err != nil {
		return err
	}

	results, err := similarity.Rank(movies, idx)
	if err != nil {
		return err
	}
	logger.Debug().Str("reference", movies[idx].Title).Int("ranked", len(results)).Msg("ranking complete")

	w := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := report.Write(w, appCfg.Output.Format, movies[idx].Title, results, appCfg.Output.Limit); err != nil {
		return err
	}
	if outPath != "" {
		logger.Info().Str("path", outPath).Msg("ranking written")
	}
	return nil
}

func init() {
	rankCmd.Flags().Bool("from-catalog", false, "read movies from the catalog instead of --csv")
	rankCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	rankCmd.Flags().Int("limit", 0, "show only the top N results (0 = all)")
	rankCmd.Flags().StringP("output", "o", "", "write the ranking to a file instead of stdout")

	bindFlag("output.format", rankCmd.Flags().Lookup("format"))
	bindFlag("output.limit", rankCmd.Flags().Lookup("limit"))

	rootCmd.AddCommand(rankCmd)
}
