package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	// Returns ErrInvalidEntity if the card data violates constraints.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID, likes included.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// List returns all cards, newest first, likes included.
	List(ctx context.Context) ([]*domain.Card, error)

	// Delete removes a card by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddLike records that the given user likes the card and returns the
	// updated card. Liking a card twice is a no-op (likes form a set).
	// Returns ErrCardNotFound if the card does not exist.
	AddLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)

	// RemoveLike removes the given user's like from the card and returns
	// the updated card. Removing an absent like is a no-op.
	// Returns ErrCardNotFound if the card does not exist.
	RemoveLike(ctx context.Context, cardID, userID uuid.UUID) (*domain.Card, error)
}
