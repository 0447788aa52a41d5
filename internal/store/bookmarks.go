package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Bookmark represents a row in the bookmarks table.
type Bookmark struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Title       string    `db:"title"`
	Link        string    `db:"link"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type BookmarkStore struct {
	db *sqlx.DB
}

func NewBookmarkStore(db *sqlx.DB) *BookmarkStore {
	return &BookmarkStore{db: db}
}

func (s *BookmarkStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new bookmark owned by ownerID.
func (s *BookmarkStore) Create(ctx context.Context, ownerID, title, link, description string) (*Bookmark, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO bookmarks (id, owner_id, title, link, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, ownerID, title, link, description, now, now)
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the bookmark matching id, or ErrNotFound.
func (s *BookmarkStore) GetByID(ctx context.Context, id string) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.q(`SELECT * FROM bookmarks WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByOwner returns all bookmarks owned by ownerID, newest first.
func (s *BookmarkStore) ListByOwner(ctx context.Context, ownerID string) ([]*Bookmark, error) {
	var bookmarks []*Bookmark
	err := s.db.SelectContext(ctx, &bookmarks, s.q(`
		SELECT * FROM bookmarks WHERE owner_id = ? ORDER BY created_at DESC, id
	`), ownerID)
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Update sets title, link, and description for the given bookmark and returns
// the updated record.
func (s *BookmarkStore) Update(ctx context.Context, id, title, link, description string) (*Bookmark, error) {
	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE bookmarks SET title = ?, link = ?, description = ?, updated_at = ? WHERE id = ?
	`), title, link, description, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a bookmark. Returns ErrNotFound if no row matched.
func (s *BookmarkStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM bookmarks WHERE id = ?`), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
