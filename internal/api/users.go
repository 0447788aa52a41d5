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

// usersAPIHandler provides REST handlers for the caller's own profile.
type usersAPIHandler struct {
	users *store.UserStore
}

// registerUserRoutes registers user routes on r.
func registerUserRoutes(r chi.Router, users *store.UserStore) {
	h := &usersAPIHandler{users: users}
	r.Get("/users/me", h.Me)
	r.Patch("/users", h.Update)
}

// Me returns the authenticated caller's profile.
// GET /users/me
func (h *usersAPIHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Update edits the caller's own profile. The record written is always the
// one behind the bearer token; a client-supplied id in the body is an
// unknown field and is dropped on decode.
// PATCH /users
func (h *usersAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	email := user.Email
	if req.Email != nil {
		if err := store.ValidateEmail(*req.Email); err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
			return
		}
		email = *req.Email
	}
	firstName := user.FirstName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	lastName := user.LastName
	if req.LastName != nil {
		lastName = *req.LastName
	}

	updated, err := h.users.UpdateProfile(r.Context(), user.ID, email, firstName, lastName)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			writeError(w, http.StatusConflict, "email is already taken", "EMAIL_TAKEN")
			return
		}
		log.Printf("api: update user %s: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

// toUserResponse converts a store.User to an API UserResponse.
func toUserResponse(u *store.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
