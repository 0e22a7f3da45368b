package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// FakeUserStore is an in-memory store.UserStore used by handler tests.
// Individual operations can be overridden with an error to simulate
// collaborator failures.
type FakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User

	CreateErr error
	GetErr    error
}

var _ store.UserStore = (*FakeUserStore)(nil)

// NewFakeUserStore creates an empty in-memory user store.
func NewFakeUserStore() *FakeUserStore {
	return &FakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

// Seed inserts a user directly, bypassing validation.
func (s *FakeUserStore) Seed(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.ID] = &cp
}

// Len reports the number of stored users.
func (s *FakeUserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *FakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *FakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *FakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *FakeUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		users = append(users, &cp)
	}
	return users, nil
}

func (s *FakeUserStore) UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u.Name = name
	u.About = about
	cp := *u
	return &cp, nil
}

func (s *FakeUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	u.Avatar = avatar
	cp := *u
	return &cp, nil
}
