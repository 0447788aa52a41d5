package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// MaintenanceStore holds bulk operations that span multiple tables.
type MaintenanceStore struct {
	db *sqlx.DB
}

func NewMaintenanceStore(db *sqlx.DB) *MaintenanceStore {
	return &MaintenanceStore{db: db}
}

// PurgeAll deletes every bookmark and every user inside one transaction.
// Bookmarks go first so a failure midway never leaves rows referencing a
// deleted user.
func (s *MaintenanceStore) PurgeAll(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return err
	}

	return tx.Commit()
}
