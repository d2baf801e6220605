package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"moodlog/internal/domain"
)

// snapshotTx writes one snapshot inside an open transaction
type snapshotTx struct {
	ctx context.Context
	tx  *sql.Tx
}

func (t *snapshotTx) writeAll(entries []domain.Entry) error {
	if err := t.clear(); err != nil {
		return err
	}

	stmt, err := t.tx.PrepareContext(t.ctx, `
		INSERT INTO entries (id, content, mood, sentiment, created_at, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.ExecContext(t.ctx, e.ID, e.Content, e.Mood, e.Sentiment, e.CreatedAt, i); err != nil {
			return fmt.Errorf("failed to insert entry %d: %w", e.ID, err)
		}
	}

	return t.setMeta("entry_count", fmt.Sprint(len(entries)))
}

// clear removes the previous snapshot
func (t *snapshotTx) clear() error {
	if _, err := t.tx.ExecContext(t.ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	return nil
}

func (t *snapshotTx) setMeta(key, value string) error {
	_, err := t.tx.ExecContext(t.ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}
