package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jstern/bookmarkd/internal/store"
	"github.com/jstern/bookmarkd/internal/testutil"
)

func newUserStore(t *testing.T) *store.UserStore {
	t.Helper()
	db := testutil.NewTestDB(t)
	return store.NewUserStore(db)
}

func TestUserCreateAndGet(t *testing.T) {
	us := newUserStore(t)
	ctx := context.Background()

	u, err := us.Create(ctx, "alice@example.com", "hash", "Alice", "Smith")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("id is empty")
	}

	byEmail, err := us.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("id = %q, want %q", byEmail.ID, u.ID)
	}
	if byEmail.PasswordHash != "hash" {
		t.Errorf("password hash = %q, want %q", byEmail.PasswordHash, "hash")
	}

	byID, err := us.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("email = %q, want %q", byID.Email, "alice@example.com")
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	us := newUserStore(t)
	ctx := context.Background()

	if _, err := us.Create(ctx, "dup@example.com", "h1", "", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := us.Create(ctx, "dup@example.com", "h2", "", "")
	if !errors.Is(err, store.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserGet_NotFound(t *testing.T) {
	us := newUserStore(t)
	ctx := context.Background()

	if _, err := us.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByEmail err = %v, want ErrNotFound", err)
	}
	if _, err := us.GetByID(ctx, "nonexistent"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID err = %v, want ErrNotFound", err)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	us := newUserStore(t)
	ctx := context.Background()

	u, err := us.Create(ctx, "bob@example.com", "hash", "Bob", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := us.UpdateProfile(ctx, u.ID, "robert@example.com", "Robert", "Jones")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "robert@example.com" {
		t.Errorf("email = %q, want %q", updated.Email, "robert@example.com")
	}
	if updated.FirstName != "Robert" || updated.LastName != "Jones" {
		t.Errorf("name = %q %q, want Robert Jones", updated.FirstName, updated.LastName)
	}
	if updated.PasswordHash != "hash" {
		t.Errorf("password hash changed by profile update: %q", updated.PasswordHash)
	}
}

func TestUserUpdateProfile_EmailTaken(t *testing.T) {
	us := newUserStore(t)
	ctx := context.Background()

	if _, err := us.Create(ctx, "taken@example.com", "h", "", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	u, err := us.Create(ctx, "mine@example.com", "h", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = us.UpdateProfile(ctx, u.ID, "taken@example.com", "", "")
	if !errors.Is(err, store.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserDelete_CascadesBookmarks(t *testing.T) {
	db := testutil.NewTestDB(t)
	us := store.NewUserStore(db)
	bs := store.NewBookmarkStore(db)
	ctx := context.Background()

	u, err := us.Create(ctx, "gone@example.com", "h", "", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	b, err := bs.Create(ctx, u.ID, "orphan-to-be", "https://example.com", "")
	if err != nil {
		t.Fatalf("create bookmark: %v", err)
	}

	if err := us.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := bs.GetByID(ctx, b.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("bookmark err = %v, want ErrNotFound after owner delete", err)
	}
}

func TestUserDelete_NotFound(t *testing.T) {
	us := newUserStore(t)
	if err := us.Delete(context.Background(), "nonexistent"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
