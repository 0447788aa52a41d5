package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jstern/bookmarkd/internal/store"
)

// CredentialsRequest is the request body for POST /auth/signup and
// POST /auth/signin. Unknown fields are silently dropped by the decoder.
type CredentialsRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Handlers provides the HTTP handlers for email/password authentication.
type Handlers struct {
	users  *store.UserStore
	hasher PasswordHasher
	tokens *TokenService
}

// NewHandlers creates a new Handlers with the given dependencies.
func NewHandlers(us *store.UserStore, hasher PasswordHasher, ts *TokenService) *Handlers {
	return &Handlers{users: us, hasher: hasher, tokens: ts}
}

// Signup registers a new user and returns a bearer token for it.
// POST /auth/signup
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := store.ValidateCredentials(req.Email, req.Password); err != nil {
		writeAuthError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		log.Printf("auth: hash password: %v", err)
		writeAuthError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	user, err := h.users.Create(r.Context(), req.Email, hash, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			writeAuthError(w, http.StatusConflict, "credentials taken", "CREDENTIALS_TAKEN")
			return
		}
		log.Printf("auth: create user %q: %v", req.Email, err)
		writeAuthError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("auth: issue token: %v", err)
		writeAuthError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeAuthJSON(w, http.StatusCreated, TokenResponse{AccessToken: token})
}

// Signin verifies credentials and returns a bearer token. A missing user and
// a wrong password produce the same response so callers cannot enumerate
// registered emails.
// POST /auth/signin
func (h *Handlers) Signin(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := store.ValidateCredentials(req.Email, req.Password); err != nil {
		writeAuthError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeInvalidCredentials(w)
			return
		}
		log.Printf("auth: get user by email: %v", err)
		writeAuthError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	ok, err := h.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Printf("auth: verify password for %s: %v", user.ID, err)
		writeAuthError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}
	if !ok {
		writeInvalidCredentials(w)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("auth: issue token: %v", err)
		writeAuthError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeAuthJSON(w, http.StatusOK, TokenResponse{AccessToken: token})
}

func writeInvalidCredentials(w http.ResponseWriter) {
	writeAuthError(w, http.StatusUnauthorized, "invalid credentials", "INVALID_CREDENTIALS")
}

func writeAuthError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}

func writeAuthJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
