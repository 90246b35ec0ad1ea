// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a similarity ranking as a table, JSON, or YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cinematch/pkg/types"
)

// Ranking is the serialized form of a ranking run.
type Ranking struct {
	Reference string        `json:"reference" yaml:"reference"`
	Total     int           `json:"total" yaml:"total"`
	Results   []RankedMovie `json:"results" yaml:"results"`
}

// RankedMovie is one result with its 1-based position.
type RankedMovie struct {
	Rank                   int `json:"rank" yaml:"rank"`
	types.SimilarityResult `yaml:",inline"`
}

// Write renders results in the given format. limit <= 0 writes every row.
func Write(w io.Writer, format types.OutputFormat, reference string, results []types.SimilarityResult, limit int) error {
	switch format {
	case types.OutputTable, "":
		FormatTable(w, reference, results, limit)
		return nil
	case types.OutputJSON:
		return FormatJSON(w, reference, results, limit)
	case types.OutputYAML:
		return FormatYAML(w, reference, results, limit)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

// NewRanking builds the serializable view of the first limit results.
func NewRanking(reference string, results []types.SimilarityResult, limit int) Ranking {
	shown := head(results, limit)
	r := Ranking{
		Reference: reference,
		Total:     len(results),
		Results:   make([]RankedMovie, len(shown)),
	}
	for i, res := range shown {
		r.Results[i] = RankedMovie{Rank: i + 1, SimilarityResult: res}
	}
	return r
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(w io.Writer, reference string, results []types.SimilarityResult, limit int) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "Movies similar to %q\n\n", reference)
	fmt.Fprintf(w, "%-4s  %-36s  %-24s  %-4s  %-4s  %-4s  %-20s  %-20s  %5s  %5s  %5s  %5s  %5s  %5s  %6s\n",
		"Rank", "Title", "Genres", "Year", "Min", "IMDB", "Director", "Actor",
		"Year", "Run", "Genre", "Rate", "Dir", "Actor", "Total")
	fmt.Fprintln(w, strings.Repeat("-", 190))

	shown := head(results, limit)
	for i, r := range shown {
		s := r.Scores
		fmt.Fprintf(w, "%-4d  %-36s  %-24s  %-4d  %-4d  %-4.1f  %-20s  %-20s  %5.2f  %5.2f  %5.2f  %5.2f  %5.2f  %5.2f  %6.3f\n",
			i+1, truncate(r.Title, 36), truncate(strings.Join(r.Genres, ", "), 24),
			r.ReleaseYear, r.RuntimeMinutes, r.Rating,
			truncate(r.Director, 20), truncate(r.LeadActor, 20),
			s.Year, s.Runtime, s.Genre, s.Rating, s.Director, s.Actor, r.Total)
	}

	fmt.Fprintf(w, "\n%d results", len(results))
	if len(shown) < len(results) {
		fmt.Fprintf(w, " (showing top %d)", len(shown))
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the ranking as indented JSON to w.
func FormatJSON(w io.Writer, reference string, results []types.SimilarityResult, limit int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewRanking(reference, results, limit))
}

// FormatYAML writes the ranking as YAML to w.
func FormatYAML(w io.Writer, reference string, results []types.SimilarityResult, limit int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewRanking(reference, results, limit)); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// FormatMovies writes a catalog listing to w.
func FormatMovies(w io.Writer, movies []types.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-40s  %-28s  %-4s  %-4s  %-4s  %-22s  %s\n",
		"#", "Title", "Genres", "Year", "Min", "IMDB", "Director", "Actor")
	fmt.Fprintln(w, strings.Repeat("-", 140))
	for i, m := range movies {
		fmt.Fprintf(w, "%-4d  %-40s  %-28s  %-4d  %-4d  %-4.1f  %-22s  %s\n",
			i+1, truncate(m.Title, 40), truncate(strings.Join(m.Genres, ", "), 28),
			m.ReleaseYear, m.RuntimeMinutes, m.Rating, truncate(m.Director, 22), m.LeadActor)
	}
	fmt.Fprintf(w, "\n%d movies\n", len(movies))
}

func head(results []types.SimilarityResult, limit int) []types.SimilarityResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
