package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jstern/bookmarkd/internal/auth"
	"github.com/jstern/bookmarkd/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	AuthHandlers  *auth.Handlers
	BearerAuth    *auth.BearerMiddleware
	UserStore     *store.UserStore
	BookmarkStore *store.BookmarkStore
}

// NewRouter creates the chi router for the whole API.
// /auth/signup and /auth/signin are the only routes reachable without a
// bearer token; everything else goes through BearerAuth.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	r.Post("/auth/signup", deps.AuthHandlers.Signup)
	r.Post("/auth/signin", deps.AuthHandlers.Signin)

	r.Group(func(r chi.Router) {
		r.Use(deps.BearerAuth.Authenticate)
		registerUserRoutes(r, deps.UserStore)
		registerBookmarkRoutes(r, deps.BookmarkStore)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
