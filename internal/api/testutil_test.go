package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jstern/bookmarkd/internal/api"
	"github.com/jstern/bookmarkd/internal/auth"
	"github.com/jstern/bookmarkd/internal/store"
	"github.com/jstern/bookmarkd/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router        http.Handler
	UserStore     *store.UserStore
	BookmarkStore *store.BookmarkStore
	Hasher        *auth.Argon2Hasher
	Tokens        *auth.TokenService
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	us := store.NewUserStore(db)
	bs := store.NewBookmarkStore(db)
	hasher := auth.NewArgon2Hasher()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)

	router := api.NewRouter(api.Deps{
		AuthHandlers:  auth.NewHandlers(us, hasher, tokens),
		BearerAuth:    auth.NewBearerMiddleware(tokens, us),
		UserStore:     us,
		BookmarkStore: bs,
	})

	return &testEnv{
		Router:        router,
		UserStore:     us,
		BookmarkStore: bs,
		Hasher:        hasher,
		Tokens:        tokens,
	}
}

// seedUser creates a user with a real password hash and returns the record.
func seedUser(t *testing.T, env *testEnv, email, password string) *store.User {
	t.Helper()
	hash, err := env.Hasher.Hash(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := env.UserStore.Create(context.Background(), email, hash, "", "")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedToken issues a bearer token for the given user.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	tok, err := env.Tokens.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// authRequest adds a Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}
