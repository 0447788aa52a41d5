package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jstern/bookmarkd/internal/api"
)

func TestUsersMe_OK(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "s3cret")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("GET", "/users/me", nil)
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != user.ID {
		t.Errorf("id = %q, want %q", resp.ID, user.ID)
	}
	if resp.Email != "alice@example.com" {
		t.Errorf("email = %q, want %q", resp.Email, "alice@example.com")
	}
}

func TestUsersMe_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest("GET", "/users/me", nil)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestUsersUpdate_OK(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice@example.com", "s3cret")
	token := seedToken(t, env, user.ID)

	body := `{"firstName":"Alicia","email":"alicia@code.com"}`
	req := httptest.NewRequest("PATCH", "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.FirstName != "Alicia" {
		t.Errorf("firstName = %q, want %q", resp.FirstName, "Alicia")
	}
	if resp.Email != "alicia@code.com" {
		t.Errorf("email = %q, want %q", resp.Email, "alicia@code.com")
	}
}

func TestUsersUpdate_PartialLeavesOtherFields(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "bob@example.com", "s3cret")
	token := seedToken(t, env, user.ID)

	body := `{"lastName":"Jones"}`
	req := httptest.NewRequest("PATCH", "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.LastName != "Jones" {
		t.Errorf("lastName = %q, want %q", resp.LastName, "Jones")
	}
	if resp.Email != "bob@example.com" {
		t.Errorf("email = %q, want unchanged %q", resp.Email, "bob@example.com")
	}
}

func TestUsersUpdate_InvalidEmail(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "carol@example.com", "s3cret")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("PATCH", "/users", bytes.NewBufferString(`{"email":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUsersUpdate_EmailTaken(t *testing.T) {
	env := newTestEnv(t)
	seedUser(t, env, "taken@example.com", "s3cret")
	user := seedUser(t, env, "mine@example.com", "s3cret")
	token := seedToken(t, env, user.ID)

	req := httptest.NewRequest("PATCH", "/users", bytes.NewBufferString(`{"email":"taken@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d; body: %s", rec.Code, http.StatusConflict, rec.Body.String())
	}
}

// A client-supplied id in the body must never redirect the update to another
// user's record: the target id always comes from the bearer token.
func TestUsersUpdate_IgnoresClientSuppliedID(t *testing.T) {
	env := newTestEnv(t)
	victim := seedUser(t, env, "victim@example.com", "s3cret")
	attacker := seedUser(t, env, "attacker@example.com", "s3cret")
	token := seedToken(t, env, attacker.ID)

	body := `{"id":"` + victim.ID + `","firstName":"Pwned"}`
	req := httptest.NewRequest("PATCH", "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	authRequest(req, token)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp api.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != attacker.ID {
		t.Errorf("updated id = %q, want caller's %q", resp.ID, attacker.ID)
	}

	// The victim's record is untouched.
	fresh, err := env.UserStore.GetByID(req.Context(), victim.ID)
	if err != nil {
		t.Fatalf("get victim: %v", err)
	}
	if fresh.FirstName != "" {
		t.Errorf("victim firstName = %q, want unchanged empty string", fresh.FirstName)
	}
}
