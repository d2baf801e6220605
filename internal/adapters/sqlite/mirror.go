package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"moodlog/internal/domain"
	"moodlog/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Mirror implements ports.SnapshotMirror using SQLite. The entries table
// keeps the backend's column layout plus the snapshot position.
type Mirror struct {
	db     *sql.DB
	dbPath string
}

// Ensure Mirror implements SnapshotMirror
var _ ports.SnapshotMirror = (*Mirror)(nil)

// OpenMirror opens the mirror database at dbPath, creating it if needed
func OpenMirror(dbPath string) (*Mirror, error) {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create mirror directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY,
			content TEXT NOT NULL,
			mood INTEGER NOT NULL,
			sentiment REAL DEFAULT 0.0,
			created_at TEXT,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_position ON entries(position);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to write schema version: %w", err)
	}

	return &Mirror{db: db, dbPath: dbPath}, nil
}

// Path returns the database file location
func (m *Mirror) Path() string {
	return m.dbPath
}

// Replace overwrites the mirrored snapshot in a single transaction
func (m *Mirror) Replace(ctx context.Context, entries []domain.Entry) error {
	sqlTx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	tx := &snapshotTx{ctx: ctx, tx: sqlTx}

	if err := tx.writeAll(entries); err != nil {
		sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Entries reads back the mirrored snapshot in its original order
func (m *Mirror) Entries(ctx context.Context) ([]domain.Entry, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, content, mood, sentiment, created_at
		FROM entries
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		var createdAt sql.NullString
		if err := rows.Scan(&e.ID, &e.Content, &e.Mood, &e.Sentiment, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.CreatedAt = createdAt.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LastCount returns the entry count recorded by the last Replace
func (m *Mirror) LastCount(ctx context.Context) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx, `SELECT CAST(value AS INTEGER) FROM meta WHERE key = 'entry_count'`).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}

// Close closes the database connection
func (m *Mirror) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
