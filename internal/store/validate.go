package store

import (
	"errors"
	"regexp"
)

var (
	// ErrEmailInvalid is returned when an email does not look like an email.
	ErrEmailInvalid = errors.New("email must look like user@host")

	// ErrPasswordEmpty is returned when a password is missing.
	ErrPasswordEmpty = errors.New("password is required")

	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateEmail checks that email has a plausible user@host shape. It does
// not check uniqueness; the unique index on users.email handles that.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidateCredentials checks the shape of a signup/signin payload.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordEmpty
	}
	return nil
}
