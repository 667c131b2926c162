package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned when a login password does not match the
// stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordVerifier checks a login attempt against a stored hash.
type PasswordVerifier interface {
	// Compare returns nil on a match and ErrPasswordMismatch otherwise.
	// Any other error means the hash itself could not be used.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier verifies bcrypt hashes written by the user store.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements PasswordVerifier.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("compare password: %w", err)
	}
}
