// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists cleaned movie records in a local SQLite database
// so repeated rankings skip CSV parsing. Only records are stored; rankings
// are always recomputed.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cinematch/pkg/types"
)

const (
	dbFile     = "cinematch.db"
	defaultDir = "catalog"
)

// Store manages the catalog SQLite database.
type Store struct {
	db  *sql.DB
	dir string
}

// Info describes the most recent import.
type Info struct {
	Source     string
	Count      int
	ImportedAt time.Time
}

// NewStore opens or creates the catalog at cfg.Dir/cinematch.db and
// creates the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, dbFile)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			pos INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			genres TEXT NOT NULL,
			director TEXT,
			lead_actor TEXT,
			release_year INTEGER NOT NULL,
			runtime_minutes INTEGER NOT NULL,
			rating REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS imports (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			source TEXT,
			count INTEGER NOT NULL,
			imported_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Import replaces the catalog contents with movies in one transaction.
// The slice order is preserved as the catalog order, which is also the
// ranking tie-break order.
func (s *Store) Import(ctx context.Context, source string, movies []types.Movie) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM movies`); err != nil {
		return 0, fmt.Errorf("clearing catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies
		(pos, title, genres, director, lead_actor, release_year, runtime_minutes, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range movies {
		genres, err := json.Marshal(nonNil(m.Genres))
		if err != nil {
			return 0, fmt.Errorf("encoding genres for %q: %w", m.Title, err)
		}
		if _, err := stmt.ExecContext(ctx, i, m.Title, string(genres), m.Director, m.LeadActor,
			m.ReleaseYear, m.RuntimeMinutes, m.Rating); err != nil {
			return 0, fmt.Errorf("inserting %q: %w", m.Title, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO imports (id, source, count, imported_at) VALUES (1, ?, ?, ?)`,
		source, len(movies), time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return 0, fmt.Errorf("recording import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return len(movies), nil
}

// Movies returns every stored record in catalog order.
func (s *Store) Movies(ctx context.Context) ([]types.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, genres, director, lead_actor,
		release_year, runtime_minutes, rating FROM movies ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("querying movies: %w", err)
	}
	defer rows.Close()

	var movies []types.Movie
	for rows.Next() {
		var (
			m      types.Movie
			genres string
		)
		if err := rows.Scan(&m.Title, &genres, &m.Director, &m.LeadActor,
			&m.ReleaseYear, &m.RuntimeMinutes, &m.Rating); err != nil {
			return nil, fmt.Errorf("scanning movie: %w", err)
		}
		if err := json.Unmarshal([]byte(genres), &m.Genres); err != nil {
			return nil, fmt.Errorf("decoding genres for %q: %w", m.Title, err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movies: %w", err)
	}
	return movies, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting movies: %w", err)
	}
	return n, nil
}

// LastImport reports the most recent import. ok is false when the catalog
// has never been imported.
func (s *Store) LastImport(ctx context.Context) (info Info, ok bool, err error) {
	var importedAt string
	err = s.db.QueryRowContext(ctx,
		`SELECT source, count, imported_at FROM imports WHERE id = 1`,
	).Scan(&info.Source, &info.Count, &importedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Info{}, false, nil
	}
	if err != nil {
		return Info{}, false, fmt.Errorf("reading import info: %w", err)
	}
	info.ImportedAt, err = time.Parse(time.RFC3339Nano, importedAt)
	if err != nil {
		return Info{}, false, fmt.Errorf("parsing import time: %w", err)
	}
	return info, true, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
