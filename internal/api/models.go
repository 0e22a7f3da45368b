package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesto-project/mesto-api/internal/domain"
)

// Request and response structures shared by the handlers. Validation tags
// mirror the field rules of the original API: name and about are 2..30
// characters, avatar and card links must be URLs.

// SignupRequest defines the payload for the user registration endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name"     validate:"omitempty,min=2,max=30"`
	About    string `json:"about"    validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar"   validate:"omitempty,url"`
}

// SignupResponse defines the successful response for the registration
// endpoint. Deliberately minimal: just the generated ID and the email.
type SignupResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// SigninRequest defines the payload for the login endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest defines the payload for PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// UpdateAvatarRequest defines the payload for PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// CreateCardRequest defines the payload for POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// UserResponse represents the response data for a user. The password hash
// is never part of any response shape.
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	About  string    `json:"about"`
	Avatar string    `json:"avatar"`
}

// CardResponse represents the response data for a card.
type CardResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Link      string      `json:"link"`
	Owner     uuid.UUID   `json:"owner"`
	Likes     []uuid.UUID `json:"likes"`
	CreatedAt time.Time   `json:"created_at"`
}

// DeleteCardResponse is the confirmation payload for a successful card
// deletion.
type DeleteCardResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
	}
}

func cardToResponse(c *domain.Card) CardResponse {
	likes := c.Likes
	if likes == nil {
		likes = []uuid.UUID{}
	}
	return CardResponse{
		ID:        c.ID,
		Name:      c.Name,
		Link:      c.Link,
		Owner:     c.OwnerID,
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}
