package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/store"
)

// MockUserStore implements store.UserStore. Without function fields it
// behaves as an in-memory store keyed by email.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	Users map[string]*domain.User
}

// NewMockUserStore creates an empty in-memory MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore. The default keeps the plaintext
// password as the "hash" so tests can pair it with MockPasswordVerifier.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	if user.Password != "" {
		user.HashedPassword = user.Password
		user.Password = ""
	}
	m.Users[user.Email] = user
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements store.UserStore.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.Users[domain.NormalizeEmail(email)]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

// Delete implements store.UserStore.
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for email, u := range m.Users {
		if u.ID == id {
			delete(m.Users, email)
			return nil
		}
	}
	return store.ErrUserNotFound
}

// WithTx returns the same mock.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
