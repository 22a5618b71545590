// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of every report row a run writes.
// The pipeline only appends to it; lookups never read from it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/casresolve/pkg/types"
)

const defaultMaxResults = 100

// Store manages the ledger database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Entry is one stored resolution.
type Entry struct {
	RunID      string             `json:"run_id" yaml:"run_id"`
	CAS        string             `json:"cas" yaml:"cas"`
	Name       string             `json:"name" yaml:"name"`
	Synonyms   string             `json:"synonyms" yaml:"synonyms"`
	Status     types.LookupStatus `json:"status" yaml:"status"`
	ResolvedAt time.Time          `json:"resolved_at" yaml:"resolved_at"`
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	RunID string
	CAS   string
	Limit int
}

// Open opens or creates the ledger at cfg.DBPath and creates the schema
// if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS resolutions (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			cas TEXT NOT NULL,
			name TEXT NOT NULL,
			synonyms TEXT NOT NULL,
			status TEXT NOT NULL,
			resolved_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resolutions_run_id ON resolutions(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_resolutions_cas ON resolutions(cas)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends the row for r under runID.
func (s *Store) Record(ctx context.Context, runID string, r types.LookupResult, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resolutions (run_id, cas, name, synonyms, status, resolved_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, r.CAS.String(), r.Name, r.JoinedSynonyms(), string(r.Status),
		at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", r.CAS, err)
	}
	return nil
}

// List returns stored rows, newest run first and in insertion order
// within a run.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	var (
		where []string
		args  []any
	)
	if f.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, f.RunID)
	}
	if f.CAS != "" {
		where = append(where, "cas = ?")
		args = append(args, f.CAS)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	q := `SELECT run_id, cas, name, synonyms, status, resolved_at FROM resolutions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += ` ORDER BY rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			status     string
			resolvedAt string
		)
		if err := rows.Scan(&e.RunID, &e.CAS, &e.Name, &e.Synonyms, &status, &resolvedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Status = types.LookupStatus(status)
		if t, err := time.Parse(time.RFC3339Nano, resolvedAt); err == nil {
			e.ResolvedAt = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}

	// Rows were fetched newest first to honour the limit; present them in
	// the order they were written.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
