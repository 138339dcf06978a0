// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a ledger of export attempts in a SQLite database.
// Each attempt is one row; the ledger is informational and never blocks an
// export.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/notepress/internal/export"
	"github.com/pdiddy/notepress/pkg/types"
)

// DBFile is the ledger database file name, kept under the vault's
// .notepress directory.
const DBFile = "history.db"

// Store manages the export history database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded export attempt.
type Entry struct {
	ID         string             `json:"id"`
	Note       string             `json:"note"`
	Template   string             `json:"template"`
	Output     string             `json:"output"`
	Status     types.ExportStatus `json:"status"`
	Diagnostic string             `json:"diagnostic,omitempty"`
	DurationMS int64              `json:"duration_ms"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Open opens or creates the history database at dir/history.db, creating
// the schema if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, DBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS exports (
		id TEXT PRIMARY KEY,
		note TEXT NOT NULL,
		template TEXT,
		output TEXT,
		status TEXT NOT NULL,
		diagnostic TEXT,
		duration_ms INTEGER,
		timestamp TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one export attempt. Implements export.Recorder.
func (s *Store) Record(rec export.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO exports (id, note, template, output, status, diagnostic, duration_ms, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), rec.Note, rec.Template, rec.Output,
		string(rec.Status), rec.Diagnostic, rec.Duration.Milliseconds(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording export: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. limit <= 0 returns
// everything.
func (s *Store) List(limit int) ([]Entry, error) {
	query := `SELECT id, note, template, output, status, diagnostic, duration_ms, timestamp
	          FROM exports ORDER BY timestamp DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.Note, &e.Template, &e.Output, &e.Status, &e.Diagnostic, &e.DurationMS, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			e.Timestamp = t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history rows: %w", err)
	}
	return entries, nil
}
