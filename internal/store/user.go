package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// bcrypt-hashed password. Returns ErrEmailExists if the email is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address, including the
	// password hash so credentials can be verified.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all registered users.
	List(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile modifies the name and about fields of an existing user
	// and returns the updated record.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, about string) (*domain.User, error)

	// UpdateAvatar replaces the avatar URL of an existing user and returns
	// the updated record.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error)
}
