package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jstern/bookmarkd/internal/auth"
	"github.com/jstern/bookmarkd/internal/store"
)

// bookmarksAPIHandler provides REST handlers for bookmark management. Every
// operation is scoped to the authenticated caller: reads filter by owner,
// writes check the target's owner first.
type bookmarksAPIHandler struct {
	bookmarks *store.BookmarkStore
}

// registerBookmarkRoutes registers bookmark routes on r.
func registerBookmarkRoutes(r chi.Router, bookmarks *store.BookmarkStore) {
	h := &bookmarksAPIHandler{bookmarks: bookmarks}
	r.Get("/bookmarks", h.List)
	r.Post("/bookmarks", h.Create)
	r.Get("/bookmarks/{id}", h.Get)
	r.Patch("/bookmarks/{id}", h.Update)
	r.Delete("/bookmarks/{id}", h.Delete)
}

// List returns the caller's bookmarks, or an empty array when there are none.
// GET /bookmarks
func (h *bookmarksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	bookmarks, err := h.bookmarks.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log.Printf("api: list bookmarks for %s: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := make([]*BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		resp = append(resp, toBookmarkResponse(b))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create creates a new bookmark owned by the caller.
// POST /bookmarks
func (h *bookmarksAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
		return
	}
	if req.Link == "" {
		writeError(w, http.StatusBadRequest, "link is required", "BAD_REQUEST")
		return
	}

	bookmark, err := h.bookmarks.Create(r.Context(), user.ID, req.Title, req.Link, req.Description)
	if err != nil {
		log.Printf("api: create bookmark %q: %v", req.Title, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, toBookmarkResponse(bookmark))
}

// Get returns a single bookmark by ID. Owner only.
// GET /bookmarks/{id}
func (h *bookmarksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	bookmark, ok := h.fetchOwned(w, r, user.ID)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponse(bookmark))
}

// Update modifies a bookmark's title, link, and description. Owner only.
// Fields absent from the body are left untouched.
// PATCH /bookmarks/{id}
func (h *bookmarksAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	bookmark, ok := h.fetchOwned(w, r, user.ID)
	if !ok {
		return
	}

	var req UpdateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	title := bookmark.Title
	if req.Title != nil {
		if *req.Title == "" {
			writeError(w, http.StatusBadRequest, "title is required", "BAD_REQUEST")
			return
		}
		title = *req.Title
	}
	link := bookmark.Link
	if req.Link != nil {
		if *req.Link == "" {
			writeError(w, http.StatusBadRequest, "link is required", "BAD_REQUEST")
			return
		}
		link = *req.Link
	}
	description := bookmark.Description
	if req.Description != nil {
		description = *req.Description
	}

	updated, err := h.bookmarks.Update(r.Context(), bookmark.ID, title, link, description)
	if err != nil {
		log.Printf("api: update bookmark %s: %v", bookmark.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponse(updated))
}

// Delete removes a bookmark. Owner only.
// DELETE /bookmarks/{id}
func (h *bookmarksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	bookmark, ok := h.fetchOwned(w, r, user.ID)
	if !ok {
		return
	}

	if err := h.bookmarks.Delete(r.Context(), bookmark.ID); err != nil {
		log.Printf("api: delete bookmark %s: %v", bookmark.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// fetchOwned loads the bookmark from the {id} URL param and enforces the
// ownership policy: absent records are 404, records owned by someone else are
// 403. On failure it writes the response and returns ok=false.
func (h *bookmarksAPIHandler) fetchOwned(w http.ResponseWriter, r *http.Request, userID string) (*store.Bookmark, bool) {
	id := chi.URLParam(r, "id")
	bookmark, err := h.bookmarks.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return nil, false
		}
		log.Printf("api: get bookmark %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return nil, false
	}

	if bookmark.OwnerID != userID {
		writeError(w, http.StatusForbidden, "forbidden", "FORBIDDEN")
		return nil, false
	}

	return bookmark, true
}

// toBookmarkResponse converts a store.Bookmark to an API BookmarkResponse.
func toBookmarkResponse(b *store.Bookmark) *BookmarkResponse {
	return &BookmarkResponse{
		ID:          b.ID,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
