package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/clauscan/clauscan/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id       TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	name     TEXT NOT NULL,
	saved_at DATETIME NOT NULL,
	payload  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_owner ON analyses(owner_id, saved_at DESC);
`

// SQLiteStore is the AnalysisStore implementation backed by SQLite
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the analysis database in dataDir.
// An empty dataDir defaults to ~/.clauscan/data.
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".clauscan", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "analyses.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.path
}

// Save persists an analysis and returns the new record ID
func (s *SQLiteStore) Save(ctx context.Context, ownerID, name string, a *model.Analysis) (string, error) {
	if name == "" {
		name = DefaultName(a)
	}

	payload, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("marshal analysis: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO analyses (id, owner_id, name, saved_at, payload) VALUES (?, ?, ?, ?, ?)",
		id, ownerID, name, time.Now().UTC(), string(payload))
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}

	return id, nil
}

// Load returns a saved analysis by ID
func (s *SQLiteStore) Load(ctx context.Context, ownerID, id string) (*SavedAnalysis, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, saved_at, payload FROM analyses WHERE owner_id = ? AND id = ?",
		ownerID, id)

	var saved SavedAnalysis
	var payload string
	if err := row.Scan(&saved.ID, &saved.OwnerID, &saved.Name, &saved.SavedAt, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query analysis: %w", err)
	}

	var a model.Analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	saved.Analysis = &a

	return &saved, nil
}

// List returns the owner's saved analyses, newest first
func (s *SQLiteStore) List(ctx context.Context, ownerID string) ([]SavedAnalysis, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, saved_at FROM analyses WHERE owner_id = ? ORDER BY saved_at DESC",
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var saved []SavedAnalysis
	for rows.Next() {
		var rec SavedAnalysis
		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.Name, &rec.SavedAt); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		saved = append(saved, rec)
	}

	return saved, rows.Err()
}

// Delete removes a saved analysis
func (s *SQLiteStore) Delete(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM analyses WHERE owner_id = ? AND id = ?", ownerID, id)
	if err != nil {
		return fmt.Errorf("delete analysis: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
