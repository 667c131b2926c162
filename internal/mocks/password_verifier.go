package mocks

import "github.com/biovital365/mandala-api/internal/service/auth"

// MockPasswordVerifier implements auth.PasswordVerifier. By default it
// accepts a password equal to the stored "hash", which pairs with
// MockUserStore's default Create.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error
	Calls     int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.Calls++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != password {
		return auth.ErrPasswordMismatch
	}
	return nil
}
