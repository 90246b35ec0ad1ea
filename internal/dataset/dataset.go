// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads the movie CSV, cleans its fields into types.Movie
// records, and resolves reference titles.
//
// The CSV follows the IMDB Top 1000 layout. Columns are located by header
// name, so extra columns and any column order are accepted. Rows whose
// numeric fields do not parse, or that fail record validation, are dropped
// and counted; the remaining rows keep file order.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/cinematch/pkg/types"
)

// Header names of the columns the loader reads.
const (
	ColTitle    = "Series_Title"
	ColGenre    = "Genre"
	ColDirector = "Director"
	ColActor    = "Star1"
	ColYear     = "Released_Year"
	ColRuntime  = "Runtime"
	ColRating   = "IMDB_Rating"
)

var requiredColumns = []string{ColTitle, ColGenre, ColDirector, ColActor, ColYear, ColRuntime, ColRating}

// Dataset is the cleaned result of a load.
type Dataset struct {
	// Movies holds the accepted records in file order.
	Movies []types.Movie

	// Rows is the number of data rows read (header excluded).
	Rows int

	// Dropped counts rows rejected as malformed or invalid.
	Dropped int
}

var validate = validator.New()

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := Load(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return ds, nil
}

// Load reads a CSV with a header row from r. A missing required column is
// an error; bad rows are not.
func Load(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, fmt.Errorf("empty dataset: no header row")
		}
		return Dataset{}, fmt.Errorf("reading header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return Dataset{}, err
	}

	var ds Dataset
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ds.Rows++

		var perr *csv.ParseError
		if errors.As(err, &perr) {
			ds.Dropped++
			continue
		}
		if err != nil {
			return ds, fmt.Errorf("reading row %d: %w", ds.Rows, err)
		}
		if len(row) != len(header) {
			ds.Dropped++
			continue
		}

		m, ok := parseRow(row, cols)
		if !ok || validate.Struct(&m) != nil {
			ds.Dropped++
			continue
		}
		ds.Movies = append(ds.Movies, m)
	}

	return ds, nil
}

// columnIndex maps each required column name to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		// Strip a UTF-8 BOM that spreadsheet exports put before the first name.
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseRow cleans one row. It reports false when a numeric field does not
// parse to a finite value.
func parseRow(row []string, cols map[string]int) (types.Movie, bool) {
	field := func(name string) string {
		return strings.TrimSpace(row[cols[name]])
	}

	year, err := strconv.Atoi(field(ColYear))
	if err != nil {
		return types.Movie{}, false
	}

	runtime, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(field(ColRuntime), "min")))
	if err != nil {
		return types.Movie{}, false
	}

	rating, err := strconv.ParseFloat(field(ColRating), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return types.Movie{}, false
	}

	return types.Movie{
		Title:          field(ColTitle),
		Genres:         splitGenres(field(ColGenre)),
		Director:       field(ColDirector),
		LeadActor:      field(ColActor),
		ReleaseYear:    year,
		RuntimeMinutes: runtime,
		Rating:         rating,
	}, true
}

// splitGenres turns "Crime, Drama" into ["Crime", "Drama"].
func splitGenres(s string) []string {
	parts := strings.Split(s, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
