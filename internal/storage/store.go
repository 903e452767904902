package storage // package storage persists the single client credential durably

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, no cgo required
)

// ErrNoCredential is returned by Load when no credential has been saved,
// or after Delete has removed it.
var ErrNoCredential = errors.New("storage: no credential saved")

// Store is the durable home of the raw bearer credential, the client-side
// analogue of the browser's local storage.  It holds at most one token:
// Save replaces wholesale, Delete clears it.  All access happens on the
// single UI goroutine, so the store does no locking of its own beyond
// what SQLite provides.
type Store struct {
	db *sql.DB
}

// Open creates (or reopens) the credential store at the given path.  The
// parent directory is created if missing and the database file is kept
// private to the current user.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create credential dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS credential (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		token    TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init credential schema: %w", err)
	}
	// The DB file may be created lazily; tighten its mode once it exists.
	_ = os.Chmod(path, 0o600)
	return &Store{db: db}, nil
}

// Save persists the raw token, replacing any previously saved credential.
func (s *Store) Save(token string) error {
	const q = `INSERT INTO credential (id, token, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at`
	if _, err := s.db.Exec(q, token, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

// Load returns the saved raw token, or ErrNoCredential when none exists.
func (s *Store) Load() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT token FROM credential WHERE id = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("load credential: %w", err)
	}
	return token, nil
}

// Delete removes the saved credential.  Deleting an empty store is not
// an error.
func (s *Store) Delete() error {
	if _, err := s.db.Exec(`DELETE FROM credential WHERE id = 1`); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
