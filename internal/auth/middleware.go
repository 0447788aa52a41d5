package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jstern/bookmarkd/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// BearerMiddleware authenticates API requests via a signed bearer token.
type BearerMiddleware struct {
	tokens *TokenService
	users  *store.UserStore
}

// NewBearerMiddleware creates a new BearerMiddleware.
func NewBearerMiddleware(ts *TokenService, us *store.UserStore) *BearerMiddleware {
	return &BearerMiddleware{tokens: ts, users: us}
}

// Authenticate is an http.Handler middleware that extracts and verifies a
// Bearer token, loads the token's user, and injects the *store.User into the
// request context. A missing, invalid, or expired token, or a user that no
// longer exists, gets a 401 and the next handler never runs.
func (m *BearerMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeUnauthorized(w)
			return
		}
		raw := strings.TrimPrefix(authHeader, "Bearer ")
		if raw == "" {
			writeUnauthorized(w)
			return
		}

		userID, err := m.tokens.Verify(raw)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		// The token may outlive its user.
		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
