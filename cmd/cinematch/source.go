// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/pdiddy/cinematch/internal/catalog"
	"github.com/pdiddy/cinematch/internal/dataset"
	"github.com/pdiddy/cinematch/pkg/types"
)

// loadMovies reads the cleaned records from the catalog when fromCatalog is
// set, otherwise from the configured CSV.
func loadMovies(ctx context.Context, fromCatalog bool) ([]types.Movie, error) {
	if fromCatalog {
		store, err := catalog.NewStore(appCfg.Catalog)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		movies, err := store.Movies(ctx)
		if err != nil {
			return nil, err
		}
		if len(movies) == 0 {
			return nil, fmt.Errorf("catalog %s is empty: run \"cinematch import --csv FILE\" first", store.Path())
		}
		logger.Debug().Str("catalog", store.Path()).Int("movies", len(movies)).Msg("catalog loaded")
		return movies, nil
	}

	ds, err := loadCSV()
	if err != nil {
		return nil, err
	}
	return ds.Movies, nil
}

// loadCSV loads and cleans the configured dataset CSV.
func loadCSV() (dataset.Dataset, error) {
	path := appCfg.Dataset.CSV
	if path == "" {
		return dataset.Dataset{}, fmt.Errorf("no dataset: pass --csv FILE or set dataset.csv in the config file")
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return dataset.Dataset{}, err
	}

	ev := logger.Info()
	if ds.Dropped > 0 {
		ev = logger.Warn()
	}
	ev.Str("path", path).Int("rows", ds.Rows).Int("loaded", len(ds.Movies)).Int("dropped", ds.Dropped).Msg("dataset loaded")

	if len(ds.Movies) == 0 {
		return dataset.Dataset{}, fmt.Errorf("dataset %s has no usable rows", path)
	}
	return ds, nil
}
