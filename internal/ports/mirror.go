package ports

import (
	"context"

	"moodlog/internal/domain"
)

// SnapshotMirror keeps an offline copy of the most recent entry snapshot
type SnapshotMirror interface {
	// Replace overwrites the mirrored snapshot with entries
	Replace(ctx context.Context, entries []domain.Entry) error

	// Entries reads back the mirrored snapshot in original order
	Entries(ctx context.Context) ([]domain.Entry, error)

	Close() error
}
