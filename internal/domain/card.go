package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors.
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardOwnerEmpty is returned when a card's owner ID is empty or nil.
	ErrCardOwnerEmpty = errors.New("card owner ID cannot be empty")

	// ErrCardNameInvalid is returned when a card's name is missing or
	// outside the 2..30 character bound.
	ErrCardNameInvalid = errors.New("card name must be between 2 and 30 characters")

	// ErrCardLinkEmpty is returned when a card's image link is empty.
	ErrCardLinkEmpty = errors.New("card link cannot be empty")
)

// Card represents a photo card published by a user. The owner is fixed at
// creation time; likes form a set of user IDs mutated only through the
// like/dislike operations.
type Card struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	OwnerID   uuid.UUID   `json:"owner"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewCard creates a new Card with the given name, link, and owner.
// It generates a new UUID for the card ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewCard(name, link string, ownerID uuid.UUID) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		Name:      name,
		Link:      link,
		OwnerID:   ownerID,
		Likes:     []uuid.UUID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}
	if c.OwnerID == uuid.Nil {
		return ErrCardOwnerEmpty
	}
	if !validFieldLength(c.Name) {
		return ErrCardNameInvalid
	}
	if c.Link == "" {
		return ErrCardLinkEmpty
	}
	return nil
}

// IsOwnedBy reports whether the given user is the card's owner. Both sides
// are uuid.UUID values parsed at the request boundary, so the comparison is
// already in canonical form.
func (c *Card) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

// IsLikedBy reports whether the given user's like is present.
func (c *Card) IsLikedBy(userID uuid.UUID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// AddLike adds the given user to the card's likes. Adding an existing like
// is a no-op, preserving set semantics.
func (c *Card) AddLike(userID uuid.UUID) {
	if c.IsLikedBy(userID) {
		return
	}
	c.Likes = append(c.Likes, userID)
}

// RemoveLike removes the given user from the card's likes. Removing an
// absent like is a no-op.
func (c *Card) RemoveLike(userID uuid.UUID) {
	for i, id := range c.Likes {
		if id == userID {
			c.Likes = append(c.Likes[:i], c.Likes[i+1:]...)
			return
		}
	}
}
