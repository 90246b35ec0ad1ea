// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cinematch/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{Dir: filepath.Join(t.TempDir(), "catalog")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func catalogMovies() []types.Movie {
	return []types.Movie{
		{Title: "Heat", Genres: []string{"Action", "Crime", "Drama"}, Director: "Michael Mann", LeadActor: "Al Pacino", ReleaseYear: 1995, RuntimeMinutes: 170, Rating: 8.2},
		{Title: "Alien", Genres: []string{"Horror", "Sci-Fi"}, Director: "Ridley Scott", LeadActor: "Sigourney Weaver", ReleaseYear: 1979, RuntimeMinutes: 117, Rating: 8.4},
		{Title: "Amélie", Genres: []string{"Comedy", "Romance"}, Director: "Jean-Pierre Jeunet", LeadActor: "Audrey Tautou", ReleaseYear: 2001, RuntimeMinutes: 122, Rating: 8.3},
	}
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	store := testStore(t)

	_, err := os.Stat(store.Path())
	require.NoError(t, err)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	n, err := store.Import(ctx, "movies.csv", catalogMovies())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := store.Movies(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalogMovies(), got, "catalog preserves records and order")
}

func TestImportReplacesContents(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	_, err := store.Import(ctx, "first.csv", catalogMovies())
	require.NoError(t, err)

	second := catalogMovies()[1:2]
	_, err = store.Import(ctx, "second.csv", second)
	require.NoError(t, err)

	got, err := store.Movies(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	info, ok, err := store.LastImport(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second.csv", info.Source)
	assert.Equal(t, 1, info.Count)
	assert.WithinDuration(t, time.Now(), info.ImportedAt, time.Minute)
}

func TestImportEmptyGenres(t *testing.T) {
	ctx := context.Background()
	store := testStore(t)

	_, err := store.Import(ctx, "x.csv", []types.Movie{{Title: "Untitled", ReleaseYear: 2000, RuntimeMinutes: 90, Rating: 5}})
	require.NoError(t, err)

	got, err := store.Movies(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Genres)
}

func TestLastImportEmptyCatalog(t *testing.T) {
	store := testStore(t)

	_, ok, err := store.LastImport(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreReopen(t *testing.T) {
	ctx := context.Background()
	cfg := types.CatalogConfig{Dir: t.TempDir()}

	store, err := NewStore(cfg)
	require.NoError(t, err)
	_, err = store.Import(ctx, "movies.csv", catalogMovies())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestImportCancelledContext(t *testing.T) {
	store := testStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Import(ctx, "movies.csv", catalogMovies())
	require.Error(t, err)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "cancelled import leaves catalog untouched")
}
