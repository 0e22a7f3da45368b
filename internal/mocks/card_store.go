package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
	"github.com/mesto-project/mesto-api/internal/store"
)

// FakeCardStore is an in-memory store.CardStore used by handler tests.
// Like mutation goes through the domain set helpers, so it shares the
// idempotence semantics of the real store.
type FakeCardStore struct {
	mu    sync.Mutex
	cards map[uuid.UUID]*domain.Card

	CreateErr error
	GetErr    error
	DeleteErr error
}

var _ store.CardStore = (*FakeCardStore)(nil)

// NewFakeCardStore creates an empty in-memory card store.
func NewFakeCardStore() *FakeCardStore {
	return &FakeCardStore{cards: make(map[uuid.UUID]*domain.Card)}
}

// Seed inserts a card directly, bypassing validation.
func (s *FakeCardStore) Seed(card *domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[card.ID] = cloneCard(card)
}

// Has reports whether a card with the given ID is present.
func (s *FakeCardStore) Has(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.cards[id]
	return ok
}

func (s *FakeCardStore) Create(ctx context.Context, card *domain.Card) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[card.ID] = cloneCard(card)
	return nil
}

func (s *FakeCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return cloneCard(c), nil
}

func (s *FakeCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cards := make([]*domain.Card, 0, len(s.cards))
	for _, c := range s.cards {
		cards = append(cards, cloneCard(c))
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

func (s *FakeCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(s.cards, id)
	return nil
}

func (s *FakeCardStore) AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	c.AddLike(userID)
	return cloneCard(c), nil
}

func (s *FakeCardStore) RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	c.RemoveLike(userID)
	return cloneCard(c), nil
}

func cloneCard(c *domain.Card) *domain.Card {
	cp := *c
	cp.Likes = append([]uuid.UUID(nil), c.Likes...)
	return &cp
}
