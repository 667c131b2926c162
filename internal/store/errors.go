package store

import (
	"errors"
	"fmt"
)

// Categories. Stores wrap these so callers can branch with errors.Is without
// knowing which entity failed.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrDuplicate         = errors.New("entity already exists")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrTransactionFailed = errors.New("transaction failed")
)

// Entity errors returned by UserStore and CalculationStore.
var (
	// ErrUserNotFound is also returned when saving a calculation for a user
	// that no longer exists.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	ErrCalculationNotFound = fmt.Errorf("%w: calculation", ErrNotFound)

	// ErrEmailExists is returned when registering an address already in use.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)
