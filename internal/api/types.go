package api

import "time"

// --- Bookmark types ---

// CreateBookmarkRequest is the request body for POST /bookmarks. Only the
// declared fields are accepted; anything else in the payload is dropped.
type CreateBookmarkRequest struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description,omitempty"`
}

// UpdateBookmarkRequest is the request body for PATCH /bookmarks/{id}.
// Nil fields are left untouched.
type UpdateBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

// BookmarkResponse is the JSON representation of a single bookmark.
type BookmarkResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- User types ---

// UpdateUserRequest is the request body for PATCH /users. Nil fields are left
// untouched. There is deliberately no ID field: the target record is always
// the authenticated caller's.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// UserResponse is the JSON representation of a user. The password hash has no
// field here and can never serialize.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
