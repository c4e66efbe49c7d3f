package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// HistoryStore persists prompt lines in SQLite so readline can preload
// them at the next session. It is line-editing convenience only; the
// shell-style history expansion of `!!` and friends is not supported.
type HistoryStore struct {
	db    *sql.DB
	path  string
	limit int
}

// NewHistoryStore opens (or creates) the history database at path.
func NewHistoryStore(path string, limit int) (*HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %v", err)
	}

	store := &HistoryStore{db: db, path: path, limit: limit}
	if err := store.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %v", err)
	}
	return store, nil
}

func (h *HistoryStore) initializeSchema() error {
	_, err := h.db.Exec(`
		CREATE TABLE IF NOT EXISTS prompt_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			line TEXT NOT NULL,
			entered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_prompt_history_entered_at
			ON prompt_history(entered_at);
	`)
	return err
}

// Append records one line, skipping blanks and immediate duplicates,
// and trims the table back to the configured limit.
func (h *HistoryStore) Append(line string) error {
	if line == "" {
		return nil
	}

	var last string
	err := h.db.QueryRow(`SELECT line FROM prompt_history ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if last == line {
		return nil
	}

	if _, err := h.db.Exec(`INSERT INTO prompt_history (line) VALUES (?)`, line); err != nil {
		return err
	}
	if h.limit > 0 {
		_, err = h.db.Exec(`
			DELETE FROM prompt_history
			WHERE id NOT IN (
				SELECT id FROM prompt_history ORDER BY id DESC LIMIT ?
			)`, h.limit)
	}
	return err
}

// Recent returns up to limit lines, oldest first, ready to replay into
// readline.
func (h *HistoryStore) Recent(limit int) ([]string, error) {
	if limit <= 0 {
		limit = h.limit
	}
	rows, err := h.db.Query(`
		SELECT line FROM (
			SELECT id, line FROM prompt_history ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Close releases the underlying database handle.
func (h *HistoryStore) Close() error {
	return h.db.Close()
}
