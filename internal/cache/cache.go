// Package cache keeps the last successfully fetched tone map per month in a
// local SQLite database, so the calendar can paint last-known colors when
// the backend is unreachable.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/filter-today/filterctl/internal/record"
)

// ErrMiss is returned when no cached copy exists for a month.
var ErrMiss = errors.New("month not cached")

// Store is the SQLite-backed month cache.
type Store struct {
	db *sql.DB
}

// Open creates or opens the cache database under stateDir.
func Open(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := sql.Open("libsql", "file:"+filepath.Join(stateDir, "tonemap.db"))
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// go-libsql rejects Exec for statements that return rows, and this
	// pragma reports the resulting journal mode as a row.
	rows, err := db.Query("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}
	rows.Close()

	schema := `
		CREATE TABLE IF NOT EXISTS tonemap_months (
			month_key  TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutMonth stores the tone map for a month, replacing any previous copy.
func (s *Store) PutMonth(year, month int, tm record.ToneMap) error {
	payload, err := json.Marshal(tm)
	if err != nil {
		return fmt.Errorf("encoding tone map: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO tonemap_months (month_key, payload, fetched_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(month_key) DO UPDATE SET payload=excluded.payload, fetched_at=excluded.fetched_at",
		record.MonthKey(year, month),
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("storing tone map: %w", err)
	}
	return nil
}

// Month returns the cached tone map for a month and when it was fetched.
func (s *Store) Month(year, month int) (record.ToneMap, time.Time, error) {
	row := s.db.QueryRow(
		"SELECT payload, fetched_at FROM tonemap_months WHERE month_key = ?",
		record.MonthKey(year, month),
	)

	var payload, fetchedStr string
	if err := row.Scan(&payload, &fetchedStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, time.Time{}, ErrMiss
		}
		return nil, time.Time{}, fmt.Errorf("querying cache: %w", err)
	}

	var tm record.ToneMap
	if err := json.Unmarshal([]byte(payload), &tm); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding cached tone map: %w", err)
	}
	fetchedAt, err := time.Parse(time.RFC3339, fetchedStr)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parsing fetched_at: %w", err)
	}
	return tm, fetchedAt, nil
}

// Purge drops every cached month (logout, account switch).
func (s *Store) Purge() error {
	if _, err := s.db.Exec("DELETE FROM tonemap_months"); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}
