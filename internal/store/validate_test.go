package store_test

import (
	"errors"
	"testing"

	"github.com/jstern/bookmarkd/internal/store"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "user@example.com", true},
		{"subdomain", "user@mail.example.com", true},
		{"plus tag", "user+tag@example.com", true},
		{"short tld", "a@x.co", true},
		{"empty", "", false},
		{"no at sign", "userexample.com", false},
		{"no domain", "user@", false},
		{"no local part", "@example.com", false},
		{"no tld", "user@example", false},
		{"spaces", "user name@example.com", false},
		{"double at", "user@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.ValidateEmail(tt.email)
			if tt.valid && err != nil {
				t.Errorf("ValidateEmail(%q) = %v, want nil", tt.email, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("ValidateEmail(%q) = nil, want error", tt.email)
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	if err := store.ValidateCredentials("user@example.com", "p"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if err := store.ValidateCredentials("user@example.com", ""); !errors.Is(err, store.ErrPasswordEmpty) {
		t.Errorf("err = %v, want ErrPasswordEmpty", err)
	}
	if err := store.ValidateCredentials("nope", "p"); !errors.Is(err, store.ErrEmailInvalid) {
		t.Errorf("err = %v, want ErrEmailInvalid", err)
	}
}
