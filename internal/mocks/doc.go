// Package mocks provides hand-written test doubles for the store, service and
// auth interfaces.
//
// Most mocks use function fields: set the field for the method under test
// and leave the rest at their defaults.
//
//	users := mocks.NewMockUserStore()
//	users.GetByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
//	    return nil, store.ErrUserNotFound
//	}
//
// MockCalculationStore is built on testify/mock instead, for tests that
// assert on call arguments.
package mocks
