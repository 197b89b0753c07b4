package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Suvadipmandal/tally/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.Store on a single SQLite database. Each
// collection is one row in the collections table holding the serialized
// document, so a write replaces the whole collection in a single statement.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite-backed store instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Read returns the stored document for a collection, or (nil, nil) if the
// collection was never written.
func (s *SQLiteStore) Read(ctx context.Context, col service.Collection) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM collections WHERE name = ?
	`, string(col)).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", col, err)
	}

	slog.Debug("read collection", "collection", col, "bytes", len(data))
	return data, nil
}

// Write atomically replaces the collection's document. On failure the
// previously stored document is left intact.
func (s *SQLiteStore) Write(ctx context.Context, col service.Collection, data []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%w: data", ErrNilParameter)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, string(col), data)
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", col, err)
	}

	slog.Debug("wrote collection", "collection", col, "bytes", len(data))
	return nil
}

// Erase removes the stored document for a collection. Erasing an absent
// collection succeeds.
func (s *SQLiteStore) Erase(ctx context.Context, col service.Collection) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM collections WHERE name = ?
	`, string(col)); err != nil {
		return fmt.Errorf("failed to erase collection %s: %w", col, err)
	}

	return nil
}
